package notify

import (
	"net/http"
	"net/url"
	"strings"

	"dostfrnd_server/config"
	"dostfrnd_server/global"
)

// GatewaySMSSender implements SMSSender against the configured http gateway
type GatewaySMSSender struct{}

func (GatewaySMSSender) Send(to string, body string) error {

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", config.Config.SMS.From)
	form.Set("Body", body)

	req, err := http.NewRequest(http.MethodPost, config.Config.SMS.URL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+config.Config.SMS.Key)

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	res.Body.Close()
	return nil
}

// SendOTP texts the verification code; failures are logged and swallowed
func SendOTP(phone string, code string) {
	if err := SMS.Send(phone, "Your verification code is "+code); err != nil {
		global.MonitorLogger.Println("SMS sender error: " + err.Error())
	}
}
