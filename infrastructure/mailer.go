package infrastructure

import (
	"fmt"
	"net/smtp"
	"os"

	"github.com/sirupsen/logrus"
)

// Mailer sends the evaluation-result notification emails. Configured from
// SMTP_* environment variables; when SMTP_HOST is unset the mailer runs in
// log-only mode so local setups work without a mail server.
type Mailer struct {
	host string
	port string
	user string
	pass string
	from string
}

func NewMailer() *Mailer {
	return &Mailer{
		host: os.Getenv("SMTP_HOST"),
		port: getenvDefault("SMTP_PORT", "587"),
		user: os.Getenv("SMTP_USER"),
		pass: os.Getenv("SMTP_PASS"),
		from: getenvDefault("SMTP_FROM", "no-reply@connectskills.com.br"),
	}
}

// SendEvaluationResult emails a candidate their compatibility score.
func (m *Mailer) SendEvaluationResult(n Notification) error {
	subject := fmt.Sprintf("Avaliação concluída - %s", n.VagaTitulo)
	body := fmt.Sprintf(
		"Olá, %s!\n\nSua avaliação de compatibilidade para a vaga \"%s\" foi concluída.\nPontuação: %.2f\n\nEquipe Connect Skills",
		n.CandidatoNome, n.VagaTitulo, n.Score,
	)

	if m.host == "" {
		logrus.WithFields(logrus.Fields{
			"to":      n.CandidatoEmail,
			"subject": subject,
		}).Info("📧 SMTP not configured, skipping email send")
		return nil
	}

	msg := []byte("From: " + m.from + "\r\n" +
		"To: " + n.CandidatoEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"\r\n" + body)

	addr := m.host + ":" + m.port
	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.pass, m.host)
	}

	if err := smtp.SendMail(addr, auth, m.from, []string{n.CandidatoEmail}, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", n.CandidatoEmail, err)
	}

	logrus.WithField("to", n.CandidatoEmail).Info("📧 Evaluation result email sent")
	return nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
