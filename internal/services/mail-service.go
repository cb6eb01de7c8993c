package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const resetMailSubject = "LMS Password Recovery"

var resetMailTmpl = template.Must(template.New("reset").Parse(
	`<p>You can reset your password by clicking <a href="{{.Link}}" target="_blank">Reset your Password</a></p>
<p>or open {{.Link}}</p>
<p>If you have not requested this email, then ignore it.</p>`))

type MailService struct {
	host     string
	port     string
	username string
	password string
	from     string
	fromName string
}

func NewMailService(host, port, username, password, from, fromName string) *MailService {
	return &MailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		fromName: fromName,
	}
}

func (s *MailService) SendResetEmail(to string, resetURL string) error {
	htmlBody, err := s.renderResetTemplate(resetURL)
	if err != nil {
		return err
	}

	fromHeader := fmt.Sprintf("%s <%s>", s.fromName, s.from)

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", fromHeader),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", resetMailSubject),
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		htmlBody,
	}, "\r\n")

	if err := s.sendSMTPWithTimeout(to, []byte(msg)); err != nil {
		return err
	}

	log.Info().Str("to", to).Msg("reset mail sent")
	return nil
}

func (s *MailService) renderResetTemplate(link string) (string, error) {
	var buf bytes.Buffer
	if err := resetMailTmpl.Execute(&buf, map[string]string{"Link": link}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *MailService) sendSMTPWithTimeout(to string, msg []byte) error {
	addr := net.JoinHostPort(s.host, s.port)

	conn, err := net.DialTimeout("tcp", addr, 8*time.Second)
	if err != nil {
		return err
	}
	_ = conn.SetDeadline(time.Now().Add(15 * time.Second))

	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return err
	}
	defer func() { _ = c.Quit() }()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			return err
		}
	}

	if s.username != "" {
		auth := smtp.PlainAuth("", s.username, s.password, s.host)
		if err := c.Auth(auth); err != nil {
			return err
		}
	}

	if err := c.Mail(s.from); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
