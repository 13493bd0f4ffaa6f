package otp

import (
	"context"
	"fmt"

	"github.com/agrobert/agrobert-backend/pkg/config"
	"github.com/agrobert/agrobert-backend/pkg/logger"
	"github.com/go-resty/resty/v2"
)

// Notifier dispatches a reset code to the user's mobile number.
type Notifier interface {
	Send(ctx context.Context, mobile string, message string) error
}

const twilioBaseURL = "https://api.twilio.com/2010-04-01"

// TwilioNotifier delivers SMS through the Twilio REST messaging endpoint.
type TwilioNotifier struct {
	client     *resty.Client
	accountSID string
	fromNumber string
}

// NewTwilioNotifier builds a notifier from the configured credentials.
func NewTwilioNotifier(cfg config.SMSConfig) *TwilioNotifier {
	client := resty.New().
		SetBaseURL(twilioBaseURL).
		SetTimeout(cfg.Timeout).
		SetBasicAuth(cfg.AccountSID, cfg.AuthToken)

	return &TwilioNotifier{
		client:     client,
		accountSID: cfg.AccountSID,
		fromNumber: cfg.FromNumber,
	}
}

// Send posts the message to Twilio. Non-2xx responses are surfaced as errors
// so the caller can decide how loudly to fail.
func (n *TwilioNotifier) Send(ctx context.Context, mobile string, message string) error {
	resp, err := n.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"To":   mobile,
			"From": n.fromNumber,
			"Body": message,
		}).
		Post(fmt.Sprintf("/Accounts/%s/Messages.json", n.accountSID))
	if err != nil {
		return fmt.Errorf("posting twilio message: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("twilio responded %s: %s", resp.Status(), resp.String())
	}
	return nil
}

// LogNotifier writes the code to the application log instead of sending SMS.
// It is the fallback when Twilio credentials are absent, which keeps local
// development working without an account.
type LogNotifier struct {
	logg *logger.Logger
}

func NewLogNotifier(logg *logger.Logger) *LogNotifier {
	return &LogNotifier{logg: logg}
}

func (n *LogNotifier) Send(ctx context.Context, mobile string, message string) error {
	ctx = n.logg.WithField(ctx, "mobile", mobile)
	n.logg.Info(ctx, fmt.Sprintf("sms delivery disabled, otp message: %s", message))
	return nil
}
