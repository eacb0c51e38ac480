/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package notification

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jerry-enebeli/nexabank/config"
	"github.com/jerry-enebeli/nexabank/internal/request"
)

// SlackNotification sends an error message to the configured Slack webhook.
func SlackNotification(err error) {
	data := json.RawMessage(fmt.Sprintf(`{
		"blocks": [
			{
				"type": "header",
				"text": {
					"type": "plain_text",
					"text": "Error From NexaBank 🐞",
					"emoji": true
				}
			},
			{
				"type": "section",
				"fields": [
					{
						"type": "mrkdwn",
						"text": "*Error:*\n%v"
					}
				]
			},
			{
				"type": "section",
				"fields": [
					{
						"type": "mrkdwn",
						"text": "*Time:*\n%v"
					}
				]
			}
		]
	}`, err.Error(), time.Now().Format(time.RFC822)))

	conf, err := config.Fetch()
	if err != nil {
		log.Println(err)
		return
	}

	payload, err := request.ToJsonReq(&data)
	if err != nil {
		log.Println(err)
		return
	}

	req, err := http.NewRequest("POST", conf.Notification.Slack.WebhookUrl, payload)
	if err != nil {
		log.Println(err)
		return
	}

	var response map[string]interface{}
	_, err = request.Call(req, &response)
	if err != nil {
		log.Println(err)
	}
}

// NotifyError sends an error notification through the configured notification
// system. It logs the error locally and sends a notification via Slack (if
// configured). Runs asynchronously to avoid blocking request handling.
func NotifyError(systemError error) {
	go func(systemError error) {
		logrus.Error(systemError)

		conf, err := config.Fetch()
		if err != nil {
			log.Println(err)
			return
		}

		if conf.Notification.Slack.WebhookUrl != "" {
			SlackNotification(systemError)
		}
	}(systemError)
}

// MailOTP delivers a password-reset OTP to the mail webhook. Outbound email
// itself is an external collaborator; this only hands the message off.
func MailOTP(email, otp string, expiresInMinutes int) error {
	conf, err := config.Fetch()
	if err != nil {
		return err
	}
	if conf.Notification.MailWebhook.Url == "" {
		logrus.Warnf("mail webhook not configured, OTP for %s not delivered", email)
		return nil
	}

	message := map[string]interface{}{
		"to":      email,
		"subject": "Password Reset OTP",
		"text":    fmt.Sprintf("Your OTP is %s. It expires in %d minutes.", otp, expiresInMinutes),
	}
	payload, err := request.ToJsonReq(&message)
	if err != nil {
		return errors.Wrap(err, "failed to encode OTP mail payload")
	}

	req, err := http.NewRequest("POST", conf.Notification.MailWebhook.Url, payload)
	if err != nil {
		return errors.Wrap(err, "failed to build OTP mail request")
	}
	for k, v := range conf.Notification.MailWebhook.Headers {
		req.Header.Set(k, v)
	}

	var response map[string]interface{}
	if _, err := request.Call(req, &response); err != nil {
		return errors.Wrap(err, "failed to deliver OTP mail")
	}
	return nil
}
