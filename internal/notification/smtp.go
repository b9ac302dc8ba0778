package notification

import (
	"context"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"

	"github.com/BruksfildServices01/inshape-booking/internal/domain/booking"
)

// SMTPMailer sends via a plain SMTP relay (Mailpit, a local postfix, ...).
type SMTPMailer struct {
	addr string
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPMailer(host, port string) *SMTPMailer {
	return &SMTPMailer{
		addr: net.JoinHostPort(strings.TrimSpace(host), strings.TrimSpace(port)),
		send: smtp.SendMail,
	}
}

// Send does not honour ctx cancellation; net/smtp has no context support.
func (m *SMTPMailer) Send(ctx context.Context, msg booking.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.send(m.addr, nil, msg.From, []string{msg.To}, buildMessage(msg)); err != nil {
		return fmt.Errorf("smtp: send to %s: %w", msg.To, err)
	}
	return nil
}

func buildMessage(msg booking.Message) []byte {
	return []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=utf-8\r\n\r\n%s\r\n",
		headerValue(msg.From),
		headerValue(msg.To),
		mime.QEncoding.Encode("utf-8", headerValue(msg.Subject)),
		msg.HTML,
	))
}

// headerValue strips line breaks so a value cannot start a new header.
func headerValue(v string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(v)
}
