package initializers

import (
	"tracker-backend/config"
	notifyemail "tracker-backend/lib/notify/email"
	"tracker-backend/lib/smtp"
)

func InitSmtp() {
	err := smtp.Connect(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, *config.Conf.Smtp.TLSEnabled)
	if err != nil {
		panic(err.Error())
	}
	notifyemail.Connect(config.Conf.Smtp.Host, config.Conf.Smtp.PortNum,
		config.Conf.Smtp.User, config.Conf.Smtp.Password, config.Conf.Smtp.EmailFrom)
}
