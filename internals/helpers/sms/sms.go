// Package sms is the fire-and-forget SMS collaborator. Failures are
// logged, never retried, and never fail the calling operation.
package sms

import (
	"log"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"tourstravels_backend/internals/configs"
)

type Notifier interface {
	Send(phone, message string)
}

/* ======================= TWILIO ======================= */

type twilioNotifier struct {
	client *twilio.RestClient
	from   string
}

// New returns a Twilio-backed notifier, or a no-op one when credentials
// are absent so callers never have to branch.
func New() Notifier {
	if configs.TwilioAccountSID == "" || configs.TwilioAuthToken == "" || configs.TwilioFromNumber == "" {
		return noopNotifier{}
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: configs.TwilioAccountSID,
		Password: configs.TwilioAuthToken,
	})
	return &twilioNotifier{client: client, from: configs.TwilioFromNumber}
}

func (n *twilioNotifier) Send(phone, message string) {
	if phone == "" {
		return
	}
	go func() {
		params := &openapi.CreateMessageParams{}
		params.SetTo(phone)
		params.SetFrom(n.from)
		params.SetBody(message)
		if _, err := n.client.Api.CreateMessage(params); err != nil {
			log.Printf("[WARN] SMS to %s failed: %v", phone, err)
		}
	}()
}

/* ======================= NOOP ======================= */

type noopNotifier struct{}

func (noopNotifier) Send(phone, message string) {
	log.Printf("[INFO] SMS disabled, would send to %s: %s", phone, message)
}
