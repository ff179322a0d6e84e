package relaysvc

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/pkg/errors"

	"github.com/Arlahanmanthrao1/school/core"
	"github.com/Arlahanmanthrao1/school/core/contact"
)

const defaultTemplate = "contact"

// Error is a relay answering with an error status.
type Error struct {
	Provider   string
	StatusCode int
	Body       string
}

func (err *Error) Error() string {
	return fmt.Sprintf("%s: status %d: %s", err.Provider, err.StatusCode, err.Body)
}

// New returns the relay selected by conf.Relay.Provider.
func New(ctx context.Context, conf *core.Config, logger core.Logger) (contact.Relay, error) {
	switch conf.Relay.Provider {
	case core.RelayEmailJS:
		return NewEmailJSRelay(conf, logger), nil
	case core.RelaySendgrid:
		return NewSendgridRelay(conf, logger), nil
	case core.RelaySES:
		client, err := newSESClient(ctx, conf)
		if err != nil {
			return nil, errors.Wrap(err, "creating SES client")
		}
		return NewSESRelay(client, conf, logger), nil
	case core.RelayConsole:
		return NewConsoleRelay(conf, logger), nil
	}
	return nil, errors.Errorf("unknown relay provider %q", conf.Relay.Provider)
}

// newContactMessage builds the email delivered to the school inbox for the relays rendering their own emails.
func newContactMessage(req contact.RelayRequest, recipient mail.Address) *core.EmailMessage {
	sub := req.Submission
	tmpl := req.TemplateID
	if tmpl == "" {
		tmpl = defaultTemplate
	}
	return &core.EmailMessage{
		To:           []mail.Address{recipient},
		ReplyTo:      &mail.Address{Name: sub.Name, Address: sub.Email},
		Subject:      "Contact: " + sub.Subject,
		TemplateName: tmpl,
		TemplateData: sub,
	}
}

func recipientAddress(conf *core.Config) mail.Address {
	addr, err := mail.ParseAddress(conf.Relay.Recipient)
	if err != nil {
		return mail.Address{Name: conf.School.Name, Address: conf.Relay.Recipient}
	}
	return *addr
}
