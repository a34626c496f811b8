package mailer

import (
	"context"
	"fmt"
)

// Mailer sends transactional mail. Implementations do not retry; a failed
// send is reported to the caller and surfaces as a request error.
type Mailer interface {
	SendVerification(ctx context.Context, to, code string) error
	SendWelcome(ctx context.Context, to, name string) error
	SendPasswordReset(ctx context.Context, to, resetURL string) error
	SendResetConfirmation(ctx context.Context, to string) error
}

// DeliveryError wraps a transport failure so handlers can report a generic
// delivery problem without exposing SMTP internals.
type DeliveryError struct {
	Kind string
	Err  error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("sending %s email: %v", e.Kind, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }
