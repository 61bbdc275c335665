// Package notify sends the operator an email when a purchase lands.
package notify

import (
	"context"
	"fmt"
	"time"

	mailjet "github.com/mailjet/mailjet-apiv3-go"
	"github.com/sirupsen/logrus"

	"github.com/yardlineiq/picksserver/internal/domain"
)

type Mailer struct {
	client     *mailjet.Client
	sender     string
	recipients []string
	log        *logrus.Entry
}

func NewMailer(publicKey, privateKey, sender string, recipients []string, log *logrus.Logger) *Mailer {
	return &Mailer{
		client:     mailjet.NewMailjetClient(publicKey, privateKey),
		sender:     sender,
		recipients: recipients,
		log:        log.WithField("name", "mailer"),
	}
}

// PurchaseConfirmed mails the admin recipients about a new paid
// subscription.
func (m *Mailer) PurchaseConfirmed(_ context.Context, sub domain.Subscriber) error {
	end := "-"
	if sub.SubscriptionEnd != nil {
		end = sub.SubscriptionEnd.UTC().Format(time.RFC1123)
	}
	body := fmt.Sprintf(
		"New customer purchase!\n\nCustomer: %s\nEmail: %s\nPackage: %s\nSubscription end: %s\nPayment ref: %s\n",
		sub.Name, sub.Email, sub.PackageType, end, sub.PaymentRef,
	)

	to := mailjet.RecipientsV31{}
	for _, recipient := range m.recipients {
		to = append(to, mailjet.RecipientV31{Email: recipient})
	}
	info := []mailjet.InfoMessagesV31{{
		From:     &mailjet.RecipientV31{Email: m.sender},
		To:       &to,
		Subject:  fmt.Sprintf("New purchase - %s package", sub.PackageType),
		TextPart: body,
	}}

	_, err := m.client.SendMailV31(&mailjet.MessagesV31{Info: info})
	if err != nil {
		return fmt.Errorf("could not send mail: %w", err)
	}
	m.log.WithField("package", sub.PackageType).Info("purchase notification sent")
	return nil
}
