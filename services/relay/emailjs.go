package relaysvc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sendgrid/rest"

	"github.com/Arlahanmanthrao1/school/core"
	"github.com/Arlahanmanthrao1/school/core/contact"
)

const emailJSProvider = "emailjs"

// EmailJSRelay sends the submission fields as template params to the EmailJS REST API,
// which renders the template & delivers the email.
type EmailJSRelay struct {
	endpoint   string
	privateKey string
	client     *rest.Client
	logger     core.Logger
}

var _ contact.Relay = (*EmailJSRelay)(nil)

type emailJSPayload struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

func NewEmailJSRelay(conf *core.Config, logger core.Logger) *EmailJSRelay {
	return &EmailJSRelay{
		endpoint:   conf.Relay.Endpoint,
		privateKey: conf.Relay.PrivateKey,
		client:     &rest.Client{HTTPClient: &http.Client{Timeout: conf.Relay.Timeout}},
		logger:     logger,
	}
}

func (r *EmailJSRelay) Send(ctx context.Context, req contact.RelayRequest) error {
	body, err := json.Marshal(emailJSPayload{
		ServiceID:      req.ServiceID,
		TemplateID:     req.TemplateID,
		UserID:         req.PublicKey,
		AccessToken:    r.privateKey,
		TemplateParams: req.Submission.Params(),
	})
	if err != nil {
		return errors.Wrap(err, "marshalling emailjs payload")
	}

	res, err := r.client.SendWithContext(ctx, rest.Request{
		Method:  rest.Post,
		BaseURL: r.endpoint,
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    body,
	})
	if err != nil {
		return errors.Wrap(err, "emailjs: sending")
	}
	if res.StatusCode >= http.StatusBadRequest {
		return &Error{Provider: emailJSProvider, StatusCode: res.StatusCode, Body: res.Body}
	}

	r.logger.Debug(fmt.Sprintf("emailjs: message sent - status: %d", res.StatusCode))
	return nil
}
