package mail

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/symposiahq/symposia/internal/config"
	"gopkg.in/gomail.v2"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

type Sender interface {
	Send(message Message) error
}

type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass)
	dialer.SSL = cfg.Secure
	return &SMTPSender{dialer: dialer, from: cfg.From}
}

func (sender *SMTPSender) Send(message Message) error {
	email := gomail.NewMessage()
	email.SetHeader("From", sender.from)
	email.SetHeader("To", message.To)
	email.SetHeader("Subject", message.Subject)
	email.SetBody("text/plain", message.Body)
	return sender.dialer.DialAndSend(email)
}

// Notifier is the outbound-notification port the workflow services call
// through. Every message is logged; delivery happens on a background
// goroutine and its failure is swallowed after logging, never surfaced
// to the request that triggered it.
type Notifier struct {
	sender    Sender
	log       *logrus.Logger
	clientURL string
	pending   sync.WaitGroup
}

// NewNotifier accepts a nil sender, in which case messages are logged only.
func NewNotifier(sender Sender, log *logrus.Logger, clientURL string) *Notifier {
	return &Notifier{sender: sender, log: log, clientURL: clientURL}
}

func (notifier *Notifier) dispatch(message Message) {
	notifier.log.WithFields(logrus.Fields{
		"to":      message.To,
		"subject": message.Subject,
	}).Info("outbound email")

	if notifier.sender == nil {
		return
	}

	notifier.pending.Add(1)
	go func() {
		defer notifier.pending.Done()
		if err := notifier.sender.Send(message); err != nil {
			notifier.log.WithError(err).WithField("to", message.To).Warn("email delivery failed")
		}
	}()
}

// Drain blocks until in-flight deliveries finish. Used on shutdown.
func (notifier *Notifier) Drain() {
	notifier.pending.Wait()
}
