package notify

import (
	"context"

	"dostfrnd_server/schemas"
)

// Collaborator contracts for the account-lifecycle side effects. All of them
// are opaque to the core: a notification failure never rolls back the state
// change that triggered it, and the payment result is passed through
// verbatim.

// Mailer delivers account emails
type Mailer interface {
	Send(to string, subject string, htmlBody string) error
}

// SMSSender delivers phone verification codes
type SMSSender interface {
	Send(to string, body string) error
}

// PaymentCharger is the opaque payment gateway collaborator
type PaymentCharger interface {
	Charge(ctx context.Context, req schemas.PaymentRequestSchema) (schemas.PaymentResultSchema, error)
}

// Mail is the configured mailer
var Mail Mailer = SMTPMailer{}

// SMS is the configured sms gateway
var SMS SMSSender = GatewaySMSSender{}

// Payments is the configured payment gateway
var Payments PaymentCharger = GatewayPaymentCharger{}
