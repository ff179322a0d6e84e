package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arlahanmanthrao1/school/core"
	"github.com/Arlahanmanthrao1/school/core/contact"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func setup(t *testing.T) (*commandLine, *contact.RelayMock, *bytes.Buffer) {
	t.Helper()
	relay := contact.NewRelayMock()
	out := new(bytes.Buffer)
	cli := &commandLine{
		conf:   core.NewTestConfig(),
		logger: nopLogger{},
		out:    out,
		newRelay: func(*core.Config, core.Logger) (contact.Relay, error) {
			return relay, nil
		},
	}
	return cli, relay, out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	wantOut    []string
}

func Test_commandLine_run(t *testing.T) {
	tests := []cliTest{
		{name: "no command", args: []string{}, wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp, wantOut: []string{"Usage:"}},
		{name: "unknown flag", args: []string{"sendtest", "-lol"}, wantErrStr: "flag provided but not defined: -lol"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, _, out := setup(t)
			err := cli.run(append([]string{"admin"}, tt.args...))
			checkErr(t, tt, err)
			for _, want := range tt.wantOut {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func Test_commandLine_sendTest(t *testing.T) {
	validArgs := []string{"sendtest", "-name", " Asha Rao", "-email", "asha@example.com", "-subject", "Admissions", "-message", "Is grade 6 open?"}

	t.Run("sent", func(t *testing.T) {
		cli, relay, out := setup(t)
		require.NoError(t, cli.run(append([]string{"admin"}, validArgs...)))
		assert.Contains(t, out.String(), "Message Sent!")

		reqs := relay.Requests()
		require.Len(t, reqs, 1)
		assert.Equal(t, "Asha Rao", reqs[0].Submission.Name)
	})

	t.Run("invalid", func(t *testing.T) {
		cli, relay, out := setup(t)
		err := cli.run([]string{"admin", "sendtest", "-email", "asha@"})
		var valErr *core.ValidationError
		assert.True(t, errors.As(err, &valErr))
		assert.Contains(t, out.String(), "name: Name is required\nemail: Please enter a valid email\n")
		assert.Zero(t, relay.Calls())
	})

	t.Run("relay failure", func(t *testing.T) {
		cli, relay, out := setup(t)
		relay.FailWith(errors.New("unreachable"))
		err := cli.run(append([]string{"admin"}, validArgs...))
		var subErr *contact.SubmissionError
		assert.True(t, errors.As(err, &subErr))
		assert.Contains(t, out.String(), "Failed to send")
	})

	t.Run("prompt key", func(t *testing.T) {
		cli, _, _ := setup(t)
		defer func(fn func(int) ([]byte, error)) { readPasswordFunc = fn }(readPasswordFunc)
		readPasswordFunc = func(int) ([]byte, error) { return []byte("private_test"), nil }

		require.NoError(t, cli.run(append(append([]string{"admin"}, validArgs...), "-prompt-key")))
		assert.Equal(t, "private_test", cli.conf.Relay.PrivateKey)
	})

	t.Run("prompt key: empty", func(t *testing.T) {
		cli, relay, _ := setup(t)
		defer func(fn func(int) ([]byte, error)) { readPasswordFunc = fn }(readPasswordFunc)
		readPasswordFunc = func(int) ([]byte, error) { return nil, nil }

		err := cli.run(append(append([]string{"admin"}, validArgs...), "-prompt-key"))
		assert.Equal(t, errHelp, err)
		assert.Zero(t, relay.Calls())
	})
}

func Test_commandLine_checkConfig(t *testing.T) {
	t.Run("console", func(t *testing.T) {
		cli, _, out := setup(t)
		require.NoError(t, cli.run([]string{"admin", "checkconfig"}))
		assert.Contains(t, out.String(), "configuration OK")
	})

	t.Run("emailjs missing keys", func(t *testing.T) {
		cli, _, out := setup(t)
		cli.conf.Relay.Provider = core.RelayEmailJS
		cli.conf.Relay.PrivateKey = "secret"

		err := cli.run([]string{"admin", "checkconfig"})
		var valErr *core.ValidationError
		require.True(t, errors.As(err, &valErr))
		assert.Contains(t, out.String(), "relay.serviceId: this field is required")
		assert.Contains(t, out.String(), "relay.publicKey: this field is required")
		assert.Contains(t, out.String(), "(set)")
		assert.NotContains(t, out.String(), "secret")
	})
}

func checkErr(t *testing.T, tt cliTest, err error) {
	t.Helper()
	switch {
	case tt.wantErr != nil:
		assert.Equal(t, tt.wantErr, err)
	case tt.wantErrStr != "":
		if assert.Error(t, err) {
			assert.Equal(t, tt.wantErrStr, err.Error())
		}
	default:
		assert.NoError(t, err)
	}
}
