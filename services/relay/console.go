package relaysvc

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"net/mail"
	"net/textproto"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/Arlahanmanthrao1/school/core"
	"github.com/Arlahanmanthrao1/school/core/contact"
)

// ConsoleRelay prints the rendered contact email instead of sending it. Used in development.
type ConsoleRelay struct {
	defaultFromEmail mail.Address
	recipient        mail.Address
	subjPrefix       string
	appName          string
	siteURL          string
	disableOutput    bool
	logger           core.Logger
}

var _ contact.Relay = (*ConsoleRelay)(nil)

func NewConsoleRelay(conf *core.Config, logger core.Logger) *ConsoleRelay {
	return &ConsoleRelay{
		defaultFromEmail: conf.DefaultFromEmail(),
		recipient:        recipientAddress(conf),
		subjPrefix:       "[" + conf.AppName + "] ",
		appName:          conf.AppName,
		siteURL:          conf.SiteURL,
		logger:           logger,
	}
}

func (svc *ConsoleRelay) Send(_ context.Context, req contact.RelayRequest) error {
	_, err := svc.sendMessage(req)
	return err
}

func (svc *ConsoleRelay) sendMessage(req contact.RelayRequest) (*core.EmailMessage, error) {
	msg := newContactMessage(req, svc.recipient)
	if err := msg.Render(svc.appName, svc.siteURL); err != nil {
		return nil, errors.Wrap(err, "rendering email")
	}
	if !msg.HasRecipients() || !msg.HasContent() {
		return nil, errors.New("console: nothing to send")
	}

	body, err := svc.format(*msg)
	if err != nil {
		return nil, err
	}
	if !svc.disableOutput {
		log.Println(body)
	}
	return msg, nil
}

func (svc *ConsoleRelay) format(msg core.EmailMessage) (string, error) {
	body := new(strings.Builder)

	// Write mail header
	_, _ = fmt.Fprintf(body, "From: %s\r\n", svc.defaultFromEmail.String())
	_, _ = fmt.Fprint(body, "MIME-Version: 1.0\r\n")
	_, _ = fmt.Fprintf(body, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	_, _ = fmt.Fprintf(body, "Subject: %s\r\n", svc.subjPrefix+msg.Subject)
	_, _ = fmt.Fprintf(body, "To: %s\r\n", joinAddresses(msg.To))
	if msg.ReplyTo != nil {
		_, _ = fmt.Fprintf(body, "Reply-To: %s\r\n", msg.ReplyTo.String())
	}

	altW := multipart.NewWriter(body)
	_, _ = fmt.Fprintf(body, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", altW.Boundary())

	w, err := altW.CreatePart(textproto.MIMEHeader{"Content-Type": {"text/plain; charset=utf-8"}})
	if err != nil {
		return "", errors.Wrap(err, "creating text/plain part")
	}
	_, _ = fmt.Fprintf(w, "%s\r\n", msg.TextContent)

	if msg.HTMLContent != "" {
		w, err = altW.CreatePart(textproto.MIMEHeader{"Content-Type": {"text/html; charset=utf-8"}})
		if err != nil {
			return "", errors.Wrap(err, "creating text/html part")
		}
		_, _ = fmt.Fprintf(w, "%s\r\n", msg.HTMLContent)
	}
	if err := altW.Close(); err != nil {
		return "", errors.Wrap(err, "closing multipart writer")
	}
	return body.String(), nil
}

func joinAddresses(addrs []mail.Address) string {
	toJoin := make([]string, 0, len(addrs))
	for _, a := range addrs {
		toJoin = append(toJoin, a.String())
	}
	return strings.Join(toJoin, ", ")
}

// ConsoleRelayMock is a silent ConsoleRelay keeping the messages it sent.
type ConsoleRelayMock struct {
	ConsoleRelay

	mu   sync.Mutex
	sent []core.EmailMessage
}

func NewConsoleRelayMock(conf *core.Config, logger core.Logger) *ConsoleRelayMock {
	svc := NewConsoleRelay(conf, logger)
	svc.disableOutput = true
	return &ConsoleRelayMock{ConsoleRelay: *svc}
}

func (svc *ConsoleRelayMock) Send(_ context.Context, req contact.RelayRequest) error {
	msg, err := svc.sendMessage(req)
	if err != nil {
		return err
	}
	svc.mu.Lock()
	svc.sent = append(svc.sent, *msg)
	svc.mu.Unlock()
	return nil
}

func (svc *ConsoleRelayMock) SentMessages() []core.EmailMessage {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return append([]core.EmailMessage(nil), svc.sent...)
}
