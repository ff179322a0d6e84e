package contact

import (
	"context"
	"sync"

	"github.com/Arlahanmanthrao1/school/core"
)

// Notice kinds
const (
	NoticeSuccess NoticeKind = "success"
	NoticeFailure NoticeKind = "failure"
)

var (
	sentNotice = Notice{
		Kind:        NoticeSuccess,
		Title:       "Message Sent!",
		Description: "We'll get back to you within 24 hours.",
	}
	failedNotice = Notice{
		Kind:        NoticeFailure,
		Title:       "Failed to send",
		Description: "Please try again or contact us directly.",
	}
)

type (
	// RelayConfig identifies the relay account & template a form sends through.
	RelayConfig struct {
		ServiceID  string
		TemplateID string
		PublicKey  string
	}

	// RelayRequest is everything a Relay needs to deliver one submission.
	RelayRequest struct {
		ServiceID  string
		TemplateID string
		PublicKey  string
		Submission Submission
	}

	// Relay is the external service that delivers contact messages as emails.
	// Send must not retry: a failed submission is retried manually by the visitor.
	Relay interface {
		Send(ctx context.Context, req RelayRequest) error
	}

	NoticeKind string

	// Notice is the transient toast shown to the visitor after a send attempt.
	Notice struct {
		Kind        NoticeKind `json:"kind"`
		Title       string     `json:"title"`
		Description string     `json:"description"`
	}

	// Notifier receives notices. It is owned by the page showing them, not by the form.
	Notifier interface {
		Notify(n Notice)
	}

	// NoticeBox is a Notifier keeping the latest notice until it is taken.
	NoticeBox struct {
		mu     sync.Mutex
		notice *Notice
	}
)

// NewRelayConfig extracts the relay settings from the service configuration.
func NewRelayConfig(conf *core.Config) RelayConfig {
	return RelayConfig{
		ServiceID:  conf.Relay.ServiceID,
		TemplateID: conf.Relay.TemplateID,
		PublicKey:  conf.Relay.PublicKey,
	}
}

func (rc RelayConfig) request(sub Submission) RelayRequest {
	return RelayRequest{
		ServiceID:  rc.ServiceID,
		TemplateID: rc.TemplateID,
		PublicKey:  rc.PublicKey,
		Submission: sub,
	}
}

func (b *NoticeBox) Notify(n Notice) {
	b.mu.Lock()
	b.notice = &n
	b.mu.Unlock()
}

// Take returns the latest notice, if any, and empties the box.
func (b *NoticeBox) Take() (Notice, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.notice == nil {
		return Notice{}, false
	}
	n := *b.notice
	b.notice = nil
	return n, true
}
