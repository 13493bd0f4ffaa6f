package otp

import (
	"context"
	"fmt"
	"time"

	"github.com/agrobert/agrobert-backend/pkg/logger"
)

// Delivery outcome messages shown to the caller. Failure still reads as a
// success to the frontend; the code lands in the server log instead.
const (
	msgSent        = "OTP sent successfully to your mobile."
	msgFallback    = "Could not send SMS. For development, please check server console for OTP."
	msgLogOnlyMode = "OTP generated. For development, please check server console."
)

// Deliverer wraps a Notifier with a bounded timeout and the degraded-but-ok
// policy: a delivery failure is logged and swallowed, because the reset flow
// must answer success whether or not the SMS made it out.
type Deliverer struct {
	notifier Notifier
	logOnly  bool
	logg     *logger.Logger
	timeout  time.Duration
}

// NewDeliverer builds a deliverer over the given notifier. logOnly marks the
// notifier as a console fallback so the outcome message can say so.
func NewDeliverer(notifier Notifier, logOnly bool, logg *logger.Logger, timeout time.Duration) *Deliverer {
	return &Deliverer{notifier: notifier, logOnly: logOnly, logg: logg, timeout: timeout}
}

// DeliverResetCode sends the reset message for the given user and returns the
// outcome text for the API response. It never fails: delivery errors are
// recorded in the log together with the code so an operator can relay it.
func (d *Deliverer) DeliverResetCode(ctx context.Context, username string, mobile string, code string) string {
	message := fmt.Sprintf("Your AgroBERT OTP is: %s", code)

	sendCtx := ctx
	if d.timeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	if err := d.notifier.Send(sendCtx, mobile, message); err != nil {
		ctx = d.logg.WithUsername(ctx, username)
		d.logg.Error(ctx, fmt.Sprintf("otp delivery failed, code is %s", code), err)
		return msgFallback
	}

	if d.logOnly {
		return msgLogOnlyMode
	}
	return msgSent
}
