package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

var (
	smsAPIURL  = os.Getenv("SMS_API_URL") // gateway endpoint, e.g. https://sms.example.com/v1/messages
	smsAPIKey  = os.Getenv("SMS_API_KEY")
	smsFrom    = os.Getenv("SMS_FROM_NUMBER")
	smsTimeout = 30 * time.Second
)

var smsClient = &http.Client{Timeout: smsTimeout}

type smsPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Message string `json:"message"`
}

// SendSMS posts one text message to the SMS gateway.
func SendSMS(to, message string) error {
	if smsAPIURL == "" {
		return fmt.Errorf("sms not configured (SMS_API_URL)")
	}

	body, err := json.Marshal(smsPayload{From: smsFrom, To: to, Message: message})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, smsAPIURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if smsAPIKey != "" {
		req.Header.Set("Authorization", "Bearer "+smsAPIKey)
	}

	resp, err := smsClient.Do(req)
	if err != nil {
		return fmt.Errorf("sms gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sms gateway returned %d: %s", resp.StatusCode, string(snippet))
	}

	return nil
}
