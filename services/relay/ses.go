package relaysvc

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/pkg/errors"

	"github.com/Arlahanmanthrao1/school/core"
	"github.com/Arlahanmanthrao1/school/core/contact"
)

const charset = "UTF-8"

// sesAPI is the part of *sesv2.Client used by SESRelay.
type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESRelay renders the contact email itself and delivers it through AWS SES.
type SESRelay struct {
	client     sesAPI
	from       mail.Address
	recipient  mail.Address
	subjPrefix string
	appName    string
	siteURL    string
	logger     core.Logger
}

var _ contact.Relay = (*SESRelay)(nil)

func newSESClient(ctx context.Context, conf *core.Config) (*sesv2.Client, error) {
	awsConf, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(conf.AWSRegion))
	if err != nil {
		return nil, err
	}
	return sesv2.NewFromConfig(awsConf, func(o *sesv2.Options) {
		if conf.Relay.Timeout > 0 {
			o.HTTPClient = awshttp.NewBuildableClient().WithTimeout(conf.Relay.Timeout)
		}
	}), nil
}

func NewSESRelay(client sesAPI, conf *core.Config, logger core.Logger) *SESRelay {
	return &SESRelay{
		client:     client,
		from:       conf.DefaultFromEmail(),
		recipient:  recipientAddress(conf),
		subjPrefix: "[" + conf.AppName + "] ",
		appName:    conf.AppName,
		siteURL:    conf.SiteURL,
		logger:     logger,
	}
}

func (svc *SESRelay) Send(ctx context.Context, req contact.RelayRequest) error {
	msg := newContactMessage(req, svc.recipient)
	if err := msg.Render(svc.appName, svc.siteURL); err != nil {
		return errors.Wrap(err, "rendering email")
	}

	to := make([]string, 0, len(msg.To))
	for _, addr := range msg.To {
		to = append(to, addr.String())
	}
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(svc.from.String()),
		Destination:      &types.Destination{ToAddresses: to},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(svc.subjPrefix + msg.Subject), Charset: aws.String(charset)},
				Body:    &types.Body{},
			},
		},
	}
	if msg.ReplyTo != nil {
		input.ReplyToAddresses = []string{msg.ReplyTo.String()}
	}
	if msg.TextContent != "" {
		input.Content.Simple.Body.Text = &types.Content{Data: aws.String(msg.TextContent), Charset: aws.String(charset)}
	}
	if msg.HTMLContent != "" {
		input.Content.Simple.Body.Html = &types.Content{Data: aws.String(msg.HTMLContent), Charset: aws.String(charset)}
	}

	out, err := svc.client.SendEmail(ctx, input)
	if err != nil {
		return errors.Wrap(err, "ses: sending")
	}

	svc.logger.Debug(fmt.Sprintf("ses: message sent - id: %s", aws.ToString(out.MessageId)))
	return nil
}
