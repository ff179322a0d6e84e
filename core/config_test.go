package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestConfig(t *testing.T) {
	conf := NewTestConfig()
	assert.Equal(t, "TEST", conf.Env)
	assert.True(t, conf.TestMode)
	assert.Equal(t, RelayConsole, conf.Relay.Provider)
	assert.Equal(t, "contact", conf.Relay.TemplateID)
	assert.Equal(t, 30*time.Second, conf.Relay.Timeout)
	assert.Equal(t, 1500*time.Millisecond, conf.Popup.Delay)
	assert.Equal(t, "Global Techno School", conf.DefaultFromEmail().Name)
	assert.Equal(t, 5.0, conf.Server.MountRateLimit)
	assert.Equal(t, 10000, conf.Server.MaxForms)
	assert.NoError(t, conf.Validate())
}

func TestNewConfig(t *testing.T) {
	workDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(workDir, "config"), 0o755))
	dotEnv := "QA_RELAY_SERVICEID=service_qa\nQA_RELAY_PUBLICKEY=public_qa\nQA_DEBUG=false\n"
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "config", ".env.qa"), []byte(dotEnv), 0o600))

	t.Setenv("ENV", "qa")
	t.Setenv("WORKDIR", workDir)
	t.Setenv("QA_RELAY_TIMEOUT", "5s")
	t.Setenv("QA_SCHOOL_WHATSAPPNUMBER", "+91 94936 82828")
	t.Setenv("QA_SERVER_MAXFORMS", "250")
	t.Cleanup(func() {
		// godotenv sets the variables of the process
		_ = os.Unsetenv("QA_RELAY_SERVICEID")
		_ = os.Unsetenv("QA_RELAY_PUBLICKEY")
		_ = os.Unsetenv("QA_DEBUG")
	})

	conf := NewConfig()
	assert.Equal(t, "QA", conf.Env)
	assert.Equal(t, workDir, conf.WorkDir)
	assert.False(t, conf.Debug)
	assert.Equal(t, RelayEmailJS, conf.Relay.Provider)
	assert.Equal(t, "service_qa", conf.Relay.ServiceID)
	assert.Equal(t, "public_qa", conf.Relay.PublicKey)
	assert.Equal(t, 5*time.Second, conf.Relay.Timeout)
	assert.Equal(t, "+91 94936 82828", conf.School.WhatsAppNumber)
	assert.Equal(t, 250, conf.Server.MaxForms)
	assert.NoError(t, conf.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name       string
		configure  func(conf *Config)
		wantFields []string
	}{
		{
			name:       "emailjs",
			configure:  func(conf *Config) { conf.Relay.Provider = RelayEmailJS },
			wantFields: []string{"relay.serviceId", "relay.publicKey"},
		},
		{
			name: "emailjs configured",
			configure: func(conf *Config) {
				conf.Relay.Provider = RelayEmailJS
				conf.Relay.ServiceID = "service"
				conf.Relay.PublicKey = "public"
			},
		},
		{
			name:       "sendgrid",
			configure:  func(conf *Config) { conf.Relay.Provider = RelaySendgrid },
			wantFields: []string{"sendgridApiKey"},
		},
		{
			name: "ses",
			configure: func(conf *Config) {
				conf.Relay.Provider = RelaySES
				conf.AWSRegion = ""
				conf.Relay.Recipient = ""
			},
			wantFields: []string{"awsRegion", "relay.recipient"},
		},
		{
			name:       "unknown",
			configure:  func(conf *Config) { conf.Relay.Provider = "fax" },
			wantFields: []string{"relay.provider"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := NewTestConfig()
			tt.configure(conf)

			err := conf.Validate()
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}
			vErr, ok := err.(*ValidationError)
			require.True(t, ok, "want *ValidationError, got %T", err)
			flds := make([]string, 0, len(vErr.Fields))
			for _, f := range vErr.Fields {
				flds = append(flds, f.Field)
			}
			assert.Equal(t, tt.wantFields, flds)
		})
	}
}
