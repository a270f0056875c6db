package mail

import (
	"Postcraft/internal/api/config"
	"bytes"
	"context"
	"fmt"
	"html/template"
	log "log/slog"

	gomail "github.com/wneessen/go-mail"
)

// Lead 预约表单提交的内容
type Lead struct {
	Name    string
	Phone   string
	Date    string
	Message string
}

type Mailer interface {
	SendLead(ctx context.Context, lead Lead) error
}

var leadTemplate = template.Must(template.New("lead").Parse(
	`<h2>New Lead</h2><p>Name: {{.Name}}</p><p>Phone: {{.Phone}}</p><p>Date: {{.Date}}</p><p>Note: {{.Message}}</p>`))

// Subject 邮件标题
func Subject(lead Lead) string {
	return fmt.Sprintf("📅 New Booking: %s - %s", lead.Date, lead.Name)
}

// RenderBody 渲染 HTML 正文，用户输入会被转义
func RenderBody(lead Lead) (string, error) {
	var buf bytes.Buffer
	if err := leadTemplate.Execute(&buf, lead); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type smtpMailer struct {
	cfg config.MailConfig
}

func NewSMTPMailer(cfg config.MailConfig) Mailer {
	return &smtpMailer{cfg: cfg}
}

// SendLead 通过 SMTP (STARTTLS + PLAIN) 发送线索通知
func (s *smtpMailer) SendLead(ctx context.Context, lead Lead) error {
	msg, err := s.buildMessage(lead)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(s.cfg.Host,
		gomail.WithPort(s.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.cfg.Username),
		gomail.WithPassword(s.cfg.Password),
		gomail.WithTLSPortPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	if err = client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	log.InfoContext(ctx, "booking mail sent", "receiver", s.cfg.Receiver)
	return nil
}

func (s *smtpMailer) buildMessage(lead Lead) (*gomail.Msg, error) {
	body, err := RenderBody(lead)
	if err != nil {
		return nil, err
	}

	sender := s.cfg.Sender
	if sender == "" {
		sender = s.cfg.Username
	}

	msg := gomail.NewMsg()
	if err = msg.From(sender); err != nil {
		return nil, fmt.Errorf("invalid sender: %w", err)
	}
	if err = msg.To(s.cfg.Receiver); err != nil {
		return nil, fmt.Errorf("invalid receiver: %w", err)
	}
	msg.Subject(Subject(lead))
	msg.SetBodyString(gomail.TypeTextHTML, body)
	return msg, nil
}
