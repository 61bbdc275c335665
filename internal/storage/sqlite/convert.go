package sqlite

import (
	"github.com/google/uuid"

	"github.com/yardlineiq/picksserver/gen/model"
	"github.com/yardlineiq/picksserver/internal/domain"
)

func convertSubscriberToDomain(sub model.Subscribers) (domain.Subscriber, error) {
	id, err := uuid.Parse(sub.ID)
	if err != nil {
		return domain.Subscriber{}, err
	}
	converted := domain.Subscriber{
		ID:              id,
		Email:           sub.Email,
		Name:            sub.Name,
		Kind:            domain.SubscriberKind(sub.Kind),
		SignedUpAt:      sub.SignedUpAt,
		SubscriptionEnd: sub.SubscriptionEnd,
	}
	if sub.PackageType != nil {
		converted.PackageType = domain.PackageType(*sub.PackageType)
	}
	if sub.PaymentRef != nil {
		converted.PaymentRef = *sub.PaymentRef
	}
	return converted, nil
}

func convertSubscribersToDomain(subs []model.Subscribers) ([]domain.Subscriber, error) {
	converted := make([]domain.Subscriber, 0, len(subs))
	for _, sub := range subs {
		d, err := convertSubscriberToDomain(sub)
		if err != nil {
			return nil, err
		}
		converted = append(converted, d)
	}
	return converted, nil
}

func convertSubscriberFromDomain(sub domain.Subscriber) model.Subscribers {
	converted := model.Subscribers{
		ID:              sub.ID.String(),
		Email:           sub.Email,
		Name:            sub.Name,
		Kind:            string(sub.Kind),
		SignedUpAt:      sub.SignedUpAt,
		SubscriptionEnd: sub.SubscriptionEnd,
	}
	if sub.PackageType != "" {
		pkg := string(sub.PackageType)
		converted.PackageType = &pkg
	}
	if sub.PaymentRef != "" {
		ref := sub.PaymentRef
		converted.PaymentRef = &ref
	}
	return converted
}

func convertPickToDomain(pick model.Picks) domain.Pick {
	converted := domain.Pick{
		ID:         int64(pick.ID),
		Week:       int(pick.Week),
		Season:     int(pick.Season),
		Game:       pick.Game,
		PickText:   pick.PickText,
		Confidence: domain.Confidence(pick.Confidence),
		PickType:   domain.PickType(pick.PickType),
		GameTime:   pick.GameTime,
		Result:     domain.PickResult(pick.Result),
		CreatedAt:  pick.CreatedAt,
	}
	if pick.Analysis != nil {
		converted.Analysis = *pick.Analysis
	}
	return converted
}

func convertPicksToDomain(picks []model.Picks) []domain.Pick {
	converted := make([]domain.Pick, 0, len(picks))
	for _, pick := range picks {
		converted = append(converted, convertPickToDomain(pick))
	}
	return converted
}

func convertPickFromDomain(pick domain.Pick) model.Picks {
	converted := model.Picks{
		ID:         int32(pick.ID),
		Week:       int32(pick.Week),
		Season:     int32(pick.Season),
		Game:       pick.Game,
		PickText:   pick.PickText,
		Confidence: string(pick.Confidence),
		PickType:   string(pick.PickType),
		GameTime:   pick.GameTime,
		Result:     string(pick.Result),
		CreatedAt:  pick.CreatedAt,
	}
	if pick.Analysis != "" {
		analysis := pick.Analysis
		converted.Analysis = &analysis
	}
	return converted
}

func convertPaymentToDomain(payment model.Payments) (domain.Payment, error) {
	id, err := uuid.Parse(payment.ID)
	if err != nil {
		return domain.Payment{}, err
	}
	return domain.Payment{
		ID:          id,
		IntentID:    payment.IntentID,
		Email:       payment.Email,
		PackageType: domain.PackageType(payment.PackageType),
		Amount:      payment.Amount,
		Currency:    payment.Currency,
		Status:      payment.Status,
		CreatedAt:   payment.CreatedAt,
	}, nil
}

func convertPaymentsToDomain(payments []model.Payments) ([]domain.Payment, error) {
	converted := make([]domain.Payment, 0, len(payments))
	for _, payment := range payments {
		d, err := convertPaymentToDomain(payment)
		if err != nil {
			return nil, err
		}
		converted = append(converted, d)
	}
	return converted, nil
}

func convertPaymentFromDomain(payment domain.Payment) model.Payments {
	return model.Payments{
		ID:          payment.ID.String(),
		IntentID:    payment.IntentID,
		Email:       payment.Email,
		PackageType: string(payment.PackageType),
		Amount:      payment.Amount,
		Currency:    payment.Currency,
		Status:      payment.Status,
		CreatedAt:   payment.CreatedAt,
	}
}
