package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/epitome-prod/callsheet-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending crew notifications
type EmailService interface {
	SendCallSheet(to, recipientName, jobName string, dayNumber int, shootDate, callTime, confirmLink string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type callSheetEmailData struct {
	RecipientName string
	JobName       string
	DayNumber     int
	ShootDate     string
	CallTime      string
	ConfirmLink   string
}

// SendCallSheet sends the call-sheet notification with the member's call
// time and an RSVP confirmation link.
func (s *emailServiceImpl) SendCallSheet(to, recipientName, jobName string, dayNumber int, shootDate, callTime, confirmLink string) error {
	data := callSheetEmailData{
		RecipientName: recipientName,
		JobName:       jobName,
		DayNumber:     dayNumber,
		ShootDate:     shootDate,
		CallTime:      callTime,
		ConfirmLink:   confirmLink,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "call_sheet.html", data); err != nil {
		return fmt.Errorf("failed to render call sheet email: %w", err)
	}

	subject := fmt.Sprintf("Call Sheet - %s - Day %d (%s)", jobName, dayNumber, shootDate)
	return s.send(to, subject, body.String())
}

func (s *emailServiceImpl) send(to, subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	msg := buildMessage(s.cfg.From, to, subject, htmlBody)

	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg)
		if err == nil {
			return nil
		}
		slog.Warn("email send failed",
			slog.String("to", to),
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()),
		)
		time.Sleep(time.Duration(attempt) * time.Second)
	}
	return fmt.Errorf("failed to send email to %s after %d attempts: %w", to, maxRetries, err)
}

func buildMessage(from, to, subject, htmlBody string) []byte {
	var msg bytes.Buffer
	msg.WriteString("From: " + from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)
	return msg.Bytes()
}
