// Package payment wraps the external payment processor. The processor
// is the source of truth for payment state; nothing here caches or
// decides beyond "did it succeed".
package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"

	"github.com/yardlineiq/picksserver/internal/domain"
)

// Customer identifies the purchaser on the created intent.
type Customer struct {
	Name  string
	Email string
}

// Intent is the reference handed back to the frontend checkout.
type Intent struct {
	ID           string
	ClientSecret string
}

// Verification is the processor's verdict on a payment reference.
type Verification struct {
	Amount   int64
	Currency string
	Status   string
}

// Gate creates payment intents and verifies their final state.
// Confirm is idempotent: repeated calls with the same reference return
// the same verified result.
type Gate interface {
	CreateIntent(ctx context.Context, amount int64, pkg domain.PackageType, customer Customer) (Intent, error)
	Confirm(ctx context.Context, reference string) (Verification, error)
}

const defaultTimeout = 10 * time.Second

// StripeGate is the Stripe-backed Gate.
type StripeGate struct {
	api     *client.API
	timeout time.Duration
}

var _ Gate = (*StripeGate)(nil)

func NewStripeGate(secretKey string, timeout time.Duration) *StripeGate {
	api := &client.API{}
	api.Init(secretKey, nil)
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &StripeGate{api: api, timeout: timeout}
}

// CreateIntent opens a payment intent for the given amount in the
// smallest currency unit. Package and purchaser ride along as metadata
// so the payment can be traced from the Stripe dashboard.
func (g *StripeGate) CreateIntent(ctx context.Context, amount int64, pkg domain.PackageType, customer Customer) (Intent, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("packageType", string(pkg))
	params.AddMetadata("customerName", customer.Name)
	params.AddMetadata("customerEmail", customer.Email)

	// NOTE: do not log the payment intent, it carries the client secret.
	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Intent{}, domain.ErrPaymentVerificationTimeout
		}
		return Intent{}, fmt.Errorf("creating payment intent: %w", err)
	}
	return Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

// Confirm retrieves the payment intent and proceeds only on a
// succeeded status. Timeouts are reported as their own failure so
// callers do not mistake a slow processor for a declined payment.
func (g *StripeGate) Confirm(ctx context.Context, reference string) (Verification, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	pi, err := g.api.PaymentIntents.Get(reference, &stripe.PaymentIntentParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Verification{}, domain.ErrPaymentVerificationTimeout
		}
		return Verification{}, fmt.Errorf("retrieving payment intent: %w", err)
	}
	v := Verification{
		Amount:   pi.Amount,
		Currency: string(pi.Currency),
		Status:   string(pi.Status),
	}
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return v, fmt.Errorf("%w: status %q", domain.ErrPaymentNotCompleted, pi.Status)
	}
	return v, nil
}
