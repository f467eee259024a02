// Package email sends the shop's transactional mail over SMTP: order
// confirmations to the buyer and order/contact notifications to the
// shop owner.
package email

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/smtp"
)

type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	AdminTo  string
}

type Service struct {
	cfg Config
}

func NewService(cfg Config) *Service {
	return &Service{cfg: cfg}
}

// Configured reports whether SMTP credentials are present. When they
// are not, sends are skipped with a log line instead of failing the
// request that triggered them.
func (s *Service) Configured() bool {
	return s.cfg.Host != "" && s.cfg.Password != "" && s.cfg.From != ""
}

type Email struct {
	To      []string
	ReplyTo string
	Subject string
	Body    string
	IsHTML  bool
}

func (s *Service) Send(email *Email) error {
	if !s.Configured() {
		return fmt.Errorf("email service not configured: missing SMTP_HOST, SMTP_PASSWORD, or EMAIL_FROM")
	}

	var msg bytes.Buffer
	msg.WriteString(fmt.Sprintf("From: %s\r\n", s.cfg.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", email.To[0]))
	if email.ReplyTo != "" {
		msg.WriteString(fmt.Sprintf("Reply-To: %s\r\n", email.ReplyTo))
	}
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", email.Subject))

	if email.IsHTML {
		msg.WriteString("MIME-Version: 1.0\r\n")
		msg.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	}

	msg.WriteString("\r\n")
	msg.WriteString(email.Body)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)
	if err := smtp.SendMail(addr, auth, s.cfg.From, email.To, msg.Bytes()); err != nil {
		slog.Error("failed to send email", "error", err, "to", email.To)
		return fmt.Errorf("failed to send email: %w", err)
	}

	slog.Info("email sent", "to", email.To, "subject", email.Subject)
	return nil
}

// OrderData carries everything the order emails render.
type OrderData struct {
	OrderID       string
	CustomerName  string
	CustomerEmail string
	OrderDate     string
	ProductName   string
	AmountCents   int64
	ShippingAddr  Address
}

type Address struct {
	Name    string
	Line1   string
	City    string
	State   string
	Zip     string
	Country string
}

// ContactData carries a storefront contact submission.
type ContactData struct {
	Email       string
	Message     string
	SubmittedAt string
}

// FormatCents converts cents to a dollar string, e.g. 1234 -> "$12.34".
func FormatCents(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100.0)
}

// SendOrderConfirmation mails the buyer their receipt.
func (s *Service) SendOrderConfirmation(data *OrderData) error {
	html, err := renderOrderEmail(customerOrderTemplate, data)
	if err != nil {
		return err
	}
	return s.Send(&Email{
		To:      []string{data.CustomerEmail},
		Subject: fmt.Sprintf("Order Confirmation - %s", data.OrderID),
		Body:    html,
		IsHTML:  true,
	})
}

// SendOrderNotificationToAdmin tells the shop owner a new order
// arrived.
func (s *Service) SendOrderNotificationToAdmin(data *OrderData) error {
	if s.cfg.AdminTo == "" {
		slog.Debug("no admin email configured, skipping order notification")
		return nil
	}
	html, err := renderOrderEmail(adminOrderTemplate, data)
	if err != nil {
		return err
	}
	return s.Send(&Email{
		To:      []string{s.cfg.AdminTo},
		Subject: fmt.Sprintf("New Order Received - %s", data.OrderID),
		Body:    html,
		IsHTML:  true,
	})
}

// SendContactNotification forwards a contact form submission to the
// shop owner.
func (s *Service) SendContactNotification(data *ContactData) error {
	if s.cfg.AdminTo == "" {
		slog.Debug("no admin email configured, skipping contact notification")
		return nil
	}
	html, err := renderContactEmail(data)
	if err != nil {
		return err
	}
	return s.Send(&Email{
		To:      []string{s.cfg.AdminTo},
		ReplyTo: data.Email,
		Subject: "New Contact Message",
		Body:    html,
		IsHTML:  true,
	})
}
