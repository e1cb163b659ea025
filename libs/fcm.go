package libs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"plant-market/config"
)

const fcmEndpoint = "https://fcm.googleapis.com/fcm/send"

var fcmClient = &http.Client{Timeout: 10 * time.Second}

type fcmPayload struct {
	To           string          `json:"to"`
	Notification fcmNotification `json:"notification"`
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type fcmResponse struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
}

// SendFCMNotification delivers a push message to a single device token.
// Callers treat delivery as best-effort: failures are returned for logging
// and never abort the surrounding request.
func SendFCMNotification(registrationToken, title, body string) error {
	if registrationToken == "" {
		return errors.New("empty registration token")
	}
	if config.AppConfig == nil || config.AppConfig.FCMServerKey == "" {
		return errors.New("FCM server key not configured")
	}

	payload, err := json.Marshal(fcmPayload{
		To:           registrationToken,
		Notification: fcmNotification{Title: title, Body: body},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, fcmEndpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+config.AppConfig.FCMServerKey)

	resp, err := fcmClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fcm returned status %d", resp.StatusCode)
	}

	var result fcmResponse
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return err
	}
	if result.Success == 0 {
		return fmt.Errorf("fcm reported %d failures", result.Failure)
	}
	return nil
}
