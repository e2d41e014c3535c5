package notifyemail

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

var Instance Provider

type Provider interface {
	Send(to, subject, htmlBody string) error
}

func Connect(host string, port int, user, password, from string) {
	Instance = &impl{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
		host:   host,
	}
}

type impl struct {
	dialer *gomail.Dialer
	from   string
	host   string
}

func (i impl) Send(to, subject, htmlBody string) error {
	logger := log.WithField("email", to)
	if i.host == "" {
		logger.Warn("Уведомление на почту не отправлено, тк не настроен почтовый клиент")
		return nil
	}
	m := gomail.NewMessage()
	m.SetHeader("From", i.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Tracker - %s", subject))
	m.SetBody("text/html", htmlBody)

	err := i.dialer.DialAndSend(m)
	if err != nil {
		logger.WithError(err).Error("Ошибка отправки уведомления на почту")
		return err
	}
	logger.Info("уведомление отправлено на почту")
	return nil
}
