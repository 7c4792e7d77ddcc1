package domain

import "encoding/json"

// PushNotification is the payload of POST /api/notifications/push. The
// backend requires either DeviceToken or Topic.
type PushNotification struct {
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	DeviceToken string            `json:"device_token,omitempty"`
	Topic       string            `json:"topic,omitempty"`
	Data        map[string]string `json:"data,omitempty"`
}

// EmailNotification is the payload of POST /api/notifications/email.
type EmailNotification struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	HTML    string `json:"html,omitempty"`
}

// SMSNotification is the payload of POST /api/notifications/sms. To is an
// E.164 number.
type SMSNotification struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// NotificationResult is what every notification route answers with. Which
// provider fields are set depends on the provider that handled the send.
type NotificationResult struct {
	Detail     string          `json:"detail"`
	MessageID  json.RawMessage `json:"message_id,omitempty"`
	StatusCode int             `json:"status_code,omitempty"`
	SID        string          `json:"sid,omitempty"`
	Warning    string          `json:"warning,omitempty"`
}
