package mailer

import (
	"fmt"
	"net/smtp"

	"project-management-api/internal/config"
	"project-management-api/internal/logging"
)

// Message is one outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers a single message. Implementations are swapped for a
// recording fake in tests and a log-only sender when SMTP is unconfigured.
type Sender interface {
	Send(msg Message) error
}

// SMTPSender delivers over plain SMTP.
type SMTPSender struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

func (s *SMTPSender) Send(msg Message) error {
	auth := smtp.PlainAuth("", s.User, s.Pass, s.Host)
	raw := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\n\r\n%s", msg.To, msg.Subject, msg.Body))
	return smtp.SendMail(fmt.Sprintf("%s:%s", s.Host, s.Port), auth, s.From, []string{msg.To}, raw)
}

// logSender is used when no SMTP host is configured; it records the send
// in the log and succeeds.
type logSender struct{}

func (logSender) Send(msg Message) error {
	logging.Logger().WithField("to", msg.To).WithField("subject", msg.Subject).
		Info("email delivery skipped: no SMTP host configured")
	return nil
}

// NewSender picks the sender implied by the config.
func NewSender(cfg *config.Config) Sender {
	if cfg.SMTPHost == "" {
		return logSender{}
	}
	return &SMTPSender{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		From: cfg.MailFrom,
	}
}

// Mailer drains a buffered queue on a single worker goroutine. Enqueue
// never blocks the request path; a full queue drops the message with a
// log line. Delivery failures are logged and never reach the caller.
type Mailer struct {
	sender Sender
	queue  chan Message
	done   chan struct{}
}

// New starts a mailer worker around the given sender.
func New(sender Sender) *Mailer {
	m := &Mailer{
		sender: sender,
		queue:  make(chan Message, 128),
		done:   make(chan struct{}),
	}
	go m.run()
	return m
}

func (m *Mailer) run() {
	for msg := range m.queue {
		if err := m.sender.Send(msg); err != nil {
			logging.Logger().WithError(err).WithField("to", msg.To).
				Error("failed to send email")
		}
	}
	close(m.done)
}

// Enqueue queues a message for background delivery, best effort.
func (m *Mailer) Enqueue(msg Message) {
	select {
	case m.queue <- msg:
	default:
		logging.Logger().WithField("to", msg.To).Warn("mail queue full, dropping message")
	}
}

// Close stops the worker after the queue drains. Used by tests to make
// delivery deterministic.
func (m *Mailer) Close() {
	close(m.queue)
	<-m.done
}
