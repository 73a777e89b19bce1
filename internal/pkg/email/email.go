package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/Oksman-1/Employee-Attendance-System/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

type Notifier struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewNotifier creates the SMTP-backed leave notifier
func NewNotifier(cfg config.SMTPConfig) (*Notifier, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &Notifier{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type leaveStatusEmailData struct {
	EmployeeName string
	StartDate    string
	EndDate      string
	Status       string
}

// SendLeaveStatus emails the employee the outcome of a leave approval decision
func (n *Notifier) SendLeaveStatus(ctx context.Context, to, employeeName string, start, end time.Time, approved bool) error {
	status := "rejected"
	if approved {
		status = "approved"
	}

	data := leaveStatusEmailData{
		EmployeeName: employeeName,
		StartDate:    start.Format("2006-01-02"),
		EndDate:      end.Format("2006-01-02"),
		Status:       status,
	}

	var body bytes.Buffer
	if err := n.templates.ExecuteTemplate(&body, "leave_status.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return n.sendHTML(ctx, to, fmt.Sprintf("Your leave request was %s", status), body.String())
}

func (n *Notifier) sendHTML(ctx context.Context, to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if n.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := n.cfg.From

	headers := fmt.Sprintf("From: %s\r\n", from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
