package mail

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/thevanityindia/vanity-server/internal/logger"
	"github.com/thevanityindia/vanity-server/internal/model"
)

var _ model.EmailSender = (*SendGridSender)(nil)

// SendGridSender delivers transactional mail through the SendGrid API.
type SendGridSender struct {
	apiKey string
	from   string
	logger *logger.Logger
}

func NewSendGridSender(apiKey, from string, logger *logger.Logger) *SendGridSender {
	return &SendGridSender{apiKey: apiKey, from: from, logger: logger}
}

func (s *SendGridSender) Send(ctx context.Context, to, subject, body string) error {
	if s.apiKey == "" {
		return fmt.Errorf("sendgrid api key is empty")
	}
	if to == "" {
		return fmt.Errorf("to address is empty")
	}

	message := sgmail.NewSingleEmail(
		sgmail.NewEmail("The Vanity", s.from),
		subject,
		sgmail.NewEmail("", to),
		body,
		fmt.Sprintf("<pre>%s</pre>", body),
	)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send error: %w", err)
	}

	if response.StatusCode >= 400 {
		s.logger.Error("sendgrid send failed",
			"status", response.StatusCode,
			"to", to)
		return fmt.Errorf("sendgrid send failed: status=%d", response.StatusCode)
	}

	s.logger.Info("mail sent",
		"status", response.StatusCode,
		"to", to,
		"subject", subject)

	return nil
}

var _ model.EmailSender = (*LogSender)(nil)

// LogSender writes mail to the log instead of delivering it. Used in
// local development when no SendGrid API key is configured.
type LogSender struct {
	logger *logger.Logger
}

func NewLogSender(logger *logger.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, to, subject, body string) error {
	s.logger.Info("mail (not delivered, log sender)",
		"to", to,
		"subject", subject,
		"body", body)
	return nil
}
