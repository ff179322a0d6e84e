package relaysvc

import (
	"context"
	"fmt"
	"net/http"
	"net/mail"
	"time"

	"github.com/pkg/errors"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/Arlahanmanthrao1/school/core"
	"github.com/Arlahanmanthrao1/school/core/contact"
)

const sendgridProvider = "sendgrid"

var (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

// SendgridRelay renders the contact email itself and delivers it to the school inbox.
type SendgridRelay struct {
	key        string
	host       string
	from       *sgmail.Email
	recipient  mail.Address
	subjPrefix string
	appName    string
	siteURL    string
	timeout    time.Duration
	logger     core.Logger
}

var _ contact.Relay = (*SendgridRelay)(nil)

func NewSendgridRelay(conf *core.Config, logger core.Logger) *SendgridRelay {
	from := conf.DefaultFromEmail()
	return &SendgridRelay{
		key:        conf.SendgridApiKey,
		host:       sendgridHost,
		from:       sgmail.NewEmail(from.Name, from.Address),
		recipient:  recipientAddress(conf),
		subjPrefix: "[" + conf.AppName + "] ",
		appName:    conf.AppName,
		siteURL:    conf.SiteURL,
		timeout:    conf.Relay.Timeout,
		logger:     logger,
	}
}

func (svc *SendgridRelay) Send(ctx context.Context, req contact.RelayRequest) error {
	msg := newContactMessage(req, svc.recipient)
	if err := msg.Render(svc.appName, svc.siteURL); err != nil {
		return errors.Wrap(err, "rendering email")
	}

	if svc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, svc.timeout)
		defer cancel()
	}

	sgReq := sendgrid.GetRequest(svc.key, sendgridEndpoint, svc.host)
	sgReq.Method = http.MethodPost
	sgReq.Body = sgmail.GetRequestBody(svc.prepare(*msg))

	res, err := sendgrid.MakeRequestWithContext(ctx, sgReq)
	if err != nil {
		return errors.Wrap(err, "sendgrid: sending")
	}
	if res.StatusCode >= http.StatusBadRequest {
		return &Error{Provider: sendgridProvider, StatusCode: res.StatusCode, Body: res.Body}
	}

	svc.logger.Debug(fmt.Sprintf("sendgrid: message sent - status: %d", res.StatusCode))
	return nil
}

func (svc *SendgridRelay) prepare(msg core.EmailMessage) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = svc.subjPrefix + msg.Subject
	for _, to := range msg.To {
		p.AddTos(sgmail.NewEmail(to.Name, to.Address))
	}

	m := sgmail.NewV3Mail()
	m.SetFrom(svc.from)
	if msg.ReplyTo != nil {
		m.SetReplyTo(sgmail.NewEmail(msg.ReplyTo.Name, msg.ReplyTo.Address))
	}
	m.AddPersonalizations(p)

	m.AddContent(sgmail.NewContent("text/plain", msg.TextContent))
	if msg.HTMLContent != "" {
		m.AddContent(sgmail.NewContent("text/html", msg.HTMLContent))
	}
	return m
}
