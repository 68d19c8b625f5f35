package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"
	"time"
)

type IMailService interface {
	SendPasswordResetOtp(to, otp string) error
	SendAdminAlert(subject, body string) error
	SendContactNotification(name, email, subject, message string) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string

	AppName    string
	AdminEmail string // recipient of operator alerts
}

type smtpMailService struct {
	cfg SMTPConfig
	tpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	tpl := template.Must(template.New("mail").Parse(mailTemplate))
	return &smtpMailService{cfg: cfg, tpl: tpl}, nil
}

type mailData struct {
	Title   string
	Body    string
	AppName string
	Year    int
}

const mailTemplate = `<!doctype html>
<html>
<body style="margin:0;background:#f4f4f5;font-family:Arial,Helvetica,sans-serif;color:#18181b">
  <div style="max-width:600px;margin:0 auto;padding:32px 16px">
    <h2 style="margin:0 0 16px">{{.Title}}</h2>
    <p style="line-height:1.6">{{.Body}}</p>
    <p style="color:#71717a;font-size:12px;margin-top:32px">&copy; {{.Year}} {{.AppName}}</p>
  </div>
</body>
</html>`

func (s *smtpMailService) SendPasswordResetOtp(to, otp string) error {
	body := fmt.Sprintf("Your password reset code is <b>%s</b>. It expires in 15 minutes. If you didn't request this, ignore this email.", otp)
	return s.send(to, "Reset your password", body)
}

func (s *smtpMailService) SendAdminAlert(subject, body string) error {
	if s.cfg.AdminEmail == "" {
		return fmt.Errorf("mail: admin alert email not configured")
	}
	return s.send(s.cfg.AdminEmail, "[ALERT] "+subject, body)
}

func (s *smtpMailService) SendContactNotification(name, email, subject, message string) error {
	if s.cfg.AdminEmail == "" {
		return fmt.Errorf("mail: admin alert email not configured")
	}
	body := fmt.Sprintf("New contact form message from %s (%s):<br><br>%s", name, email, message)
	if subject == "" {
		subject = "Contact form message"
	}
	return s.send(s.cfg.AdminEmail, subject, body)
}

func (s *smtpMailService) send(to, subject, body string) error {
	var html bytes.Buffer
	if err := s.tpl.Execute(&html, mailData{
		Title:   subject,
		Body:    body,
		AppName: s.cfg.AppName,
		Year:    time.Now().Year(),
	}); err != nil {
		return err
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	msg.Write(html.Bytes())

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg.String()))
}
