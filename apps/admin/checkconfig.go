package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/Arlahanmanthrao1/school/core"
)

// checkConfig prints the relay settings in use (secrets masked) and validates them.
func (cli *commandLine) checkConfig() error {
	conf := cli.conf
	secret := func(s string) string {
		if s == "" {
			return "(not set)"
		}
		return "(set)"
	}

	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "env\t%s\n", conf.Env)
	fmt.Fprintf(w, "relay.provider\t%s\n", conf.Relay.Provider)
	switch conf.Relay.Provider {
	case core.RelayEmailJS:
		fmt.Fprintf(w, "relay.endpoint\t%s\n", conf.Relay.Endpoint)
		fmt.Fprintf(w, "relay.serviceId\t%s\n", conf.Relay.ServiceID)
		fmt.Fprintf(w, "relay.templateId\t%s\n", conf.Relay.TemplateID)
		fmt.Fprintf(w, "relay.publicKey\t%s\n", conf.Relay.PublicKey)
		fmt.Fprintf(w, "relay.privateKey\t%s\n", secret(conf.Relay.PrivateKey))
	case core.RelaySendgrid:
		fmt.Fprintf(w, "sendgridApiKey\t%s\n", secret(conf.SendgridApiKey))
		fmt.Fprintf(w, "relay.recipient\t%s\n", conf.Relay.Recipient)
	case core.RelaySES:
		fmt.Fprintf(w, "awsRegion\t%s\n", conf.AWSRegion)
		fmt.Fprintf(w, "relay.recipient\t%s\n", conf.Relay.Recipient)
	default:
		fmt.Fprintf(w, "relay.recipient\t%s\n", conf.Relay.Recipient)
	}
	fmt.Fprintf(w, "relay.timeout\t%s\n", conf.Relay.Timeout)
	_ = w.Flush()

	if err := conf.Validate(); err != nil {
		if vErr, ok := err.(*core.ValidationError); ok {
			for _, fErr := range vErr.Fields {
				fmt.Fprintf(cli.out, "%s: %s\n", fErr.Field, fErr.Error)
			}
		}
		return err
	}
	fmt.Fprintln(cli.out, "configuration OK")
	return nil
}
