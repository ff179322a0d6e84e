package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"

	"github.com/Arlahanmanthrao1/school/apps/api/di"
	"github.com/Arlahanmanthrao1/school/core"
	"github.com/Arlahanmanthrao1/school/core/contact"
	"github.com/Arlahanmanthrao1/school/services/metrics"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	conf     *core.Config
	logger   core.Logger
	out      io.Writer
	newRelay func(conf *core.Config, logger core.Logger) (contact.Relay, error)
}

func newRelay(conf *core.Config, logger core.Logger) (contact.Relay, error) {
	return di.NewRelay(conf, logger, (*metrics.ContactMetrics)(nil))
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  sendtest -name NAME -email EMAIL -subject SUBJECT -message MESSAGE [-prompt-key] - send a contact message through the configured relay")
	fmt.Fprintln(cli.out, "  checkconfig - validate the relay configuration")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	sendTestCmd := flag.NewFlagSet("sendtest", flag.ContinueOnError)
	sendTestCmd.SetOutput(cli.out)
	sendTestName := sendTestCmd.String("name", "", "The sender's name.")
	sendTestEmail := sendTestCmd.String("email", "", "The sender's email.")
	sendTestSubject := sendTestCmd.String("subject", "", "The message subject.")
	sendTestMessage := sendTestCmd.String("message", "", "The message.")
	sendTestPromptKey := sendTestCmd.Bool("prompt-key", false, "Prompt for the relay private key.")

	switch args[1] {
	case "sendtest":
		if err := sendTestCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *sendTestPromptKey {
			fmt.Fprint(cli.out, "Enter relay private key:")
			key, err := readPasswordFunc(int(syscall.Stdin))
			fmt.Fprintln(cli.out)
			if err != nil {
				return err
			}
			if len(key) == 0 {
				sendTestCmd.Usage()
				return errHelp
			}
			cli.conf.Relay.PrivateKey = string(key)
		}
		return cli.sendTest(contact.Submission{
			Name:    *sendTestName,
			Email:   *sendTestEmail,
			Subject: *sendTestSubject,
			Message: *sendTestMessage,
		})
	case "checkconfig":
		return cli.checkConfig()
	default:
		cli.printUsage()
		return errHelp
	}
}
