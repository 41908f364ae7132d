package mailer

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"github.com/go-mail/mail/v2"
)

//go:embed "templates"
var templateFS embed.FS

type Mailer interface {
	Send(recipient, templateFile string, data any) error
}

// SMTPMailer renders a template from templates/ and delivers it over SMTP.
// Each template defines "subject", "plainBody" and "htmlBody".
type SMTPMailer struct {
	dialer *mail.Dialer
	sender string
}

func NewSMTPMailer(host string, port int, username, password, sender string) *SMTPMailer {
	dialer := mail.NewDialer(host, port, username, password)
	dialer.Timeout = 5 * time.Second

	return &SMTPMailer{
		dialer: dialer,
		sender: sender,
	}
}

func (m *SMTPMailer) Send(recipient, templateFile string, data any) error {
	msg, err := render(templateFile, data)
	if err != nil {
		return err
	}

	message := mail.NewMessage()
	message.SetHeader("To", recipient)
	message.SetHeader("From", m.sender)
	message.SetHeader("Subject", msg.Subject)
	message.SetBody("text/plain", msg.PlainBody)
	message.AddAlternative("text/html", msg.HTMLBody)

	return m.dialer.DialAndSend(message)
}

type renderedMessage struct {
	Subject   string
	PlainBody string
	HTMLBody  string
}

func render(templateFile string, data any) (*renderedMessage, error) {
	tmpl, err := template.New("email").ParseFS(templateFS, "templates/"+templateFile)
	if err != nil {
		return nil, err
	}

	var msg renderedMessage
	parts := []struct {
		name string
		dst  *string
	}{
		{"subject", &msg.Subject},
		{"plainBody", &msg.PlainBody},
		{"htmlBody", &msg.HTMLBody},
	}

	for _, part := range parts {
		buf := new(bytes.Buffer)
		if err := tmpl.ExecuteTemplate(buf, part.name, data); err != nil {
			return nil, err
		}
		*part.dst = buf.String()
	}

	return &msg, nil
}
