package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"cms_backend/internal/usecase/interfaces"
)

const (
	defaultSMTPServer = "postmail.cmseng.com.br"
	defaultSMTPPort   = "465"
)

// SMTPGateway relays HTML mail through the company SMTP host over implicit
// TLS. Each call authenticates with the credentials it was given; there is no
// pooled connection.
type SMTPGateway struct {
	host string
	port string
}

var _ interfaces.IMailGateway = (*SMTPGateway)(nil)

func NewSMTPGateway(host, port string) *SMTPGateway {
	if host == "" {
		host = defaultSMTPServer
	}
	if port == "" {
		port = defaultSMTPPort
	}
	return &SMTPGateway{host: host, port: port}
}

func (g *SMTPGateway) dial(ctx context.Context) (*smtp.Client, error) {
	dialer := &tls.Dialer{Config: &tls.Config{ServerName: g.host}}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(g.host, g.port))
	if err != nil {
		return nil, err
	}
	client, err := smtp.NewClient(conn, g.host)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return client, nil
}

func (g *SMTPGateway) VerifyCredentials(ctx context.Context, email, password string) error {
	client, err := g.dial(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	return client.Auth(smtp.PlainAuth("", email, password, g.host))
}

// Send relays one message per recipient on a single authenticated session,
// mirroring how senders expect per-recipient delivery receipts to behave.
func (g *SMTPGateway) Send(ctx context.Context, from, password string, to []string, subject, htmlBody string) error {
	client, err := g.dial(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Auth(smtp.PlainAuth("", from, password, g.host)); err != nil {
		return err
	}

	for _, rcpt := range to {
		if err := client.Mail(from); err != nil {
			return err
		}
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
		w, err := client.Data()
		if err != nil {
			return err
		}
		msg := buildMessage(from, rcpt, subject, htmlBody)
		if _, err := w.Write([]byte(msg)); err != nil {
			w.Close()
			return err
		}
		if err := w.Close(); err != nil {
			return err
		}
	}

	return client.Quit()
}

func buildMessage(from, to, subject, htmlBody string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	b.WriteString("\r\n")
	return b.String()
}
