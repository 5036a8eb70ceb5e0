package services

import (
	"log"
	"sync"

	"christmas-gift-api/config"
)

// Notifier is the outbound transport used for approval notifications. The
// production implementation sends through SMTP and the SMS gateway; tests
// substitute fakes.
type Notifier interface {
	SendEmail(to []string, subject, html string) error
	SendSMS(to, message string) error
}

// TransportNotifier delegates to the configured SMTP and SMS transports.
type TransportNotifier struct{}

func (TransportNotifier) SendEmail(to []string, subject, html string) error {
	return config.SendMail(to, subject, html)
}

func (TransportNotifier) SendSMS(to, message string) error {
	return config.SendSMS(to, message)
}

// sendSMSFanout dispatches message to every recipient concurrently. One
// recipient's failure does not stop the others; the first error is kept and
// returned once every send has finished.
func sendSMSFanout(notifier Notifier, recipients []string, message string) error {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for _, recipient := range recipients {
		wg.Add(1)
		go func(to string) {
			defer wg.Done()
			if err := notifier.SendSMS(to, message); err != nil {
				log.Printf("Failed to send SMS to %s: %v", to, err)
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(recipient)
	}

	wg.Wait()
	return firstErr
}
