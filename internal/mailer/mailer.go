// Package mailer sends health reports by email through AWS SES.
package mailer

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// Sender delivers a plain-text message. The report service depends on
// this interface so tests can swap in a recorder.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SES sends via AWS SES using the default credential chain.
type SES struct {
	client *ses.Client
	from   string
}

// NewSES builds an SES sender. from is the verified source address.
func NewSES(ctx context.Context, from string) (*SES, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("aws config load: %w", err)
	}
	return &SES{client: ses.NewFromConfig(cfg), from: from}, nil
}

func (s *SES) Send(ctx context.Context, to, subject, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(s.from),
	}
	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}
