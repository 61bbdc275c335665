package web

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yardlineiq/picksserver/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

type signupRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type signupResponse struct {
	Success           bool   `json:"success"`
	AlreadyRegistered bool   `json:"alreadyRegistered,omitempty"`
	Message           string `json:"message"`
}

type customerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type createIntentRequest struct {
	Amount       float64      `json:"amount"`
	PackageType  string       `json:"packageType"`
	CustomerInfo customerInfo `json:"customerInfo"`
}

func (r createIntentRequest) Validate() error {
	if r.CustomerInfo.Name == "" || r.CustomerInfo.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "customer name and email are required")
	}
	if r.Amount <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "amount must be positive")
	}
	if !domain.PackageType(r.PackageType).Paid() {
		return domain.ErrInvalidPackage
	}
	return nil
}

type createIntentResponse struct {
	PaymentIntentID string `json:"paymentIntentId"`
	ClientSecret    string `json:"clientSecret"`
}

type confirmPaymentRequest struct {
	PaymentIntentID string       `json:"paymentIntentId"`
	PackageType     string       `json:"packageType"`
	CustomerInfo    customerInfo `json:"customerInfo"`
}

func (r confirmPaymentRequest) Validate() error {
	if r.PaymentIntentID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "payment intent id is required")
	}
	if r.CustomerInfo.Name == "" || r.CustomerInfo.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "customer name and email are required")
	}
	if !domain.PackageType(r.PackageType).Paid() {
		return domain.ErrInvalidPackage
	}
	return nil
}

type confirmPaymentResponse struct {
	Success         bool       `json:"success"`
	Message         string     `json:"message"`
	SubscriptionEnd *time.Time `json:"subscriptionEnd,omitempty"`
	AccessToken     string     `json:"accessToken,omitempty"`
}

type adminSigninRequest struct {
	Password string `json:"password"`
}

type createPickRequest struct {
	Week       int       `json:"week"`
	Season     int       `json:"season"`
	Game       string    `json:"game"`
	PickText   string    `json:"pick"`
	Confidence string    `json:"confidence"`
	PickType   string    `json:"pickType"`
	GameTime   time.Time `json:"gameTime"`
	Analysis   string    `json:"analysis"`
}

func (r createPickRequest) Validate() error {
	switch {
	case r.Week <= 0:
		return fmt.Errorf("%w: week is required", domain.ErrInvalidPick)
	case r.Game == "":
		return fmt.Errorf("%w: game is required", domain.ErrInvalidPick)
	case r.PickText == "":
		return fmt.Errorf("%w: pick is required", domain.ErrInvalidPick)
	case !domain.Confidence(r.Confidence).Valid():
		return fmt.Errorf("%w: unknown confidence %q", domain.ErrInvalidPick, r.Confidence)
	case !domain.PickType(r.PickType).Valid():
		return fmt.Errorf("%w: unknown pick type %q", domain.ErrInvalidPick, r.PickType)
	case r.GameTime.IsZero():
		return fmt.Errorf("%w: game time is required", domain.ErrInvalidPick)
	}
	return nil
}

func (r createPickRequest) convertToDomainPick() domain.Pick {
	return domain.Pick{
		Week:       r.Week,
		Season:     r.Season,
		Game:       r.Game,
		PickText:   r.PickText,
		Confidence: domain.Confidence(r.Confidence),
		PickType:   domain.PickType(r.PickType),
		GameTime:   r.GameTime,
		Analysis:   r.Analysis,
	}
}

type updatePickRequest struct {
	Result string `json:"result"`
}

type pickResponse struct {
	ID         int64     `json:"id"`
	Week       int       `json:"week"`
	Season     int       `json:"season"`
	Game       string    `json:"game"`
	PickText   string    `json:"pick"`
	Confidence string    `json:"confidence"`
	PickType   string    `json:"pickType"`
	GameTime   time.Time `json:"gameTime"`
	Result     string    `json:"result"`
	Analysis   string    `json:"analysis,omitempty"`
	DatePosted time.Time `json:"datePosted"`
}

func convertPick(pick domain.Pick) pickResponse {
	return pickResponse{
		ID:         pick.ID,
		Week:       pick.Week,
		Season:     pick.Season,
		Game:       pick.Game,
		PickText:   pick.PickText,
		Confidence: string(pick.Confidence),
		PickType:   string(pick.PickType),
		GameTime:   pick.GameTime,
		Result:     string(pick.Result),
		Analysis:   pick.Analysis,
		DatePosted: pick.CreatedAt,
	}
}

func convertPicks(picks []domain.Pick) []pickResponse {
	converted := make([]pickResponse, 0, len(picks))
	for _, pick := range picks {
		converted = append(converted, convertPick(pick))
	}
	return converted
}

type picksResponse struct {
	Picks []pickResponse `json:"picks"`
}

type subscriberResponse struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	Name            string     `json:"name"`
	Kind            string     `json:"kind"`
	PackageType     string     `json:"packageType,omitempty"`
	SignupDate      time.Time  `json:"signupDate"`
	SubscriptionEnd *time.Time `json:"subscriptionEnd,omitempty"`
	Status          string     `json:"status"`
}

func convertSubscribers(subs []domain.Subscriber, now time.Time) []subscriberResponse {
	converted := make([]subscriberResponse, 0, len(subs))
	for _, sub := range subs {
		converted = append(converted, subscriberResponse{
			ID:              sub.ID.String(),
			Email:           sub.Email,
			Name:            sub.Name,
			Kind:            string(sub.Kind),
			PackageType:     string(sub.PackageType),
			SignupDate:      sub.SignedUpAt,
			SubscriptionEnd: sub.SubscriptionEnd,
			Status:          sub.Status(now),
		})
	}
	return converted
}
