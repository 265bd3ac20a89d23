package notify

import (
	"fmt"
	"net/smtp"

	"dostfrnd_server/config"
	"dostfrnd_server/global"
)

// SMTPMailer implements Mailer over plain smtp
type SMTPMailer struct{}

func (SMTPMailer) Send(to string, subject string, htmlBody string) error {
	from := "From: " + config.Config.EmailFrom + "\n"
	mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
	message := from + "Subject: " + subject + "\n" + mime + htmlBody

	plainAuth := smtp.PlainAuth("", config.Config.SMTP.User, config.Config.SMTP.Password, config.Config.SMTP.Host)
	return smtp.SendMail(
		config.Config.SMTP.Host+":"+fmt.Sprint(config.Config.SMTP.Port),
		plainAuth,
		config.Config.SMTP.User,
		[]string{to},
		[]byte(message),
	)
}

// SendWelcome emails the onboarding message; failures are logged and swallowed
func SendWelcome(name string, email string) {
	body := "<html><body><div><h1>Welcome, " + name + "!</h1><p>Head to your profile to start finding matches.</p></div></body></html>"
	if err := Mail.Send(email, "Welcome", body); err != nil {
		global.MonitorLogger.Println("Email sender error: " + err.Error())
	}
}

// SendPasswordReset emails the reset link; the caller decides what to do on failure
func SendPasswordReset(email string, resetURL string) error {
	body := "<html><body><div><p>Reset your password within <b>10 minutes</b>:</p><a href=\"" + resetURL + "\">" + resetURL + "</a></div></body></html>"
	return Mail.Send(email, "Password reset", body)
}
