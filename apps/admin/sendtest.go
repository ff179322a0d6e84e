package main

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/Arlahanmanthrao1/school/core"
	"github.com/Arlahanmanthrao1/school/core/contact"
)

// sendTest submits sub once, exactly like a visitor would through the contact page.
func (cli *commandLine) sendTest(sub contact.Submission) error {
	relay, err := cli.newRelay(cli.conf, cli.logger)
	if err != nil {
		return errors.Wrap(err, "creating relay")
	}

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)

	notices := new(contact.NoticeBox)
	form := contact.NewForm("admin-sendtest", contact.FormDeps{
		Relay:      relay,
		RelayConf:  contact.NewRelayConfig(cli.conf),
		Notifier:   notices,
		Validate:   validate,
		Translator: translator,
		Logger:     cli.logger,
	})
	if err = form.SetAll(sub); err != nil {
		return err
	}

	err = form.Submit(context.Background())
	var valErr *core.ValidationError
	if errors.As(err, &valErr) {
		errs := form.Errors()
		for _, f := range contact.Fields {
			if msg, ok := errs.Lookup(f); ok {
				fmt.Fprintf(cli.out, "%s: %s\n", f, msg)
			}
		}
		return err
	}

	if n, ok := notices.Take(); ok {
		fmt.Fprintf(cli.out, "%s %s\n", n.Title, n.Description)
	}
	return err
}
