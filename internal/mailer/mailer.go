// Package mailer delivers generated content by email through Resend.
package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
	// Configured reports whether the delivery credential is present. No side
	// effects; used by the verify endpoint.
	Configured() bool
}

type Service struct {
	client *resend.Client
	apiKey string
	from   string
}

func New(apiKey, from string) *Service {
	return &Service{
		client: resend.NewClient(apiKey),
		apiKey: apiKey,
		from:   from,
	}
}

func (s *Service) Send(ctx context.Context, to, subject, html string) error {
	if s.apiKey == "" {
		return fmt.Errorf("email provider API key is not configured")
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *Service) Configured() bool {
	return s.apiKey != ""
}

// ContentTemplate wraps generated content in the fixed TextCraft HTML email
// layout. Newlines in the content become <br> so plain text keeps its shape.
func ContentTemplate(content, title string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>%s</title>
  <style>
    body {
      font-family: Arial, sans-serif;
      line-height: 1.6;
      color: #333;
      max-width: 600px;
      margin: 0 auto;
      padding: 20px;
    }
    .header {
      border-bottom: 2px solid #f0f0f0;
      padding-bottom: 10px;
      margin-bottom: 20px;
    }
    .logo {
      font-weight: bold;
      font-size: 20px;
      color: #4F46E5;
    }
    .content {
      white-space: pre-wrap;
      margin-bottom: 30px;
    }
    .footer {
      font-size: 12px;
      color: #666;
      border-top: 1px solid #f0f0f0;
      padding-top: 15px;
      margin-top: 30px;
    }
  </style>
</head>
<body>
  <div class="header">
    <div class="logo">TextCraft</div>
  </div>
  <h1>%s</h1>
  <div class="content">
    %s
  </div>
  <div class="footer">
    <p>This content was generated using TextCraft AI</p>
  </div>
</body>
</html>`, title, title, strings.ReplaceAll(content, "\n", "<br>"))
}
