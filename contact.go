package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/smtp"
	"strings"

	"github.com/gin-gonic/gin"
)

var errSMTPNotConfigured = errors.New("SMTP credentials not configured")

type contactForm struct {
	Name    string `form:"fullName" binding:"required,max=200"`
	Email   string `form:"email" binding:"required,email"`
	Message string `form:"message" binding:"required,max=5000"`
}

// Mailer delivers contact form submissions.
type Mailer interface {
	Send(form contactForm) error
}

type smtpMailer struct {
	cfg      SMTPConfig
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func newSMTPMailer(cfg SMTPConfig) *smtpMailer {
	return &smtpMailer{cfg: cfg, sendMail: smtp.SendMail}
}

// headerSafe strips line breaks so user input cannot add mail headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

func (m *smtpMailer) Send(form contactForm) error {
	if m.cfg.User == "" || m.cfg.Pass == "" {
		return errSMTPNotConfigured
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", headerSafe(form.Name))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, form.Name, form.Email, form.Message)

	msg := []byte("To: " + m.cfg.ToEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + m.cfg.User + "\r\n" +
		"Reply-To: " + headerSafe(form.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	if err := m.sendMail(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.User, []string{m.cfg.ToEmail}, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

func (s *app) handleContact(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Please fill in your name, a valid email and a message.",
		})
		return
	}

	if err := s.mailer.Send(form); err != nil {
		slog.Error("error sending contact email", "error", err)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	slog.Info("contact email sent", "sender", s.admin.hash(form.Email))
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}
