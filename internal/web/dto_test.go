package web

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validCreatePick() createPickRequest {
	return createPickRequest{
		Week:       5,
		Game:       "Chiefs @ Bills",
		PickText:   "Bills -2.5",
		Confidence: "High",
		PickType:   "premium",
		GameTime:   time.Now().Add(48 * time.Hour),
	}
}

func TestCreatePickRequest_Validate(t *testing.T) {
	require.NoError(t, validCreatePick().Validate())

	tests := []struct {
		name   string
		mutate func(*createPickRequest)
	}{
		{"missing week", func(r *createPickRequest) { r.Week = 0 }},
		{"missing game", func(r *createPickRequest) { r.Game = "" }},
		{"missing pick", func(r *createPickRequest) { r.PickText = "" }},
		{"bad confidence", func(r *createPickRequest) { r.Confidence = "Certain" }},
		{"bad pick type", func(r *createPickRequest) { r.PickType = "vip" }},
		{"missing game time", func(r *createPickRequest) { r.GameTime = time.Time{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreatePick()
			tt.mutate(&req)
			require.Error(t, req.Validate())
		})
	}
}

func TestCreateIntentRequest_Validate(t *testing.T) {
	valid := createIntentRequest{
		Amount:       49.00,
		PackageType:  "monthly",
		CustomerInfo: customerInfo{Name: "Bob", Email: "bob@test.com"},
	}
	require.NoError(t, valid.Validate())

	missingCustomer := valid
	missingCustomer.CustomerInfo.Email = ""
	require.Error(t, missingCustomer.Validate())

	zeroAmount := valid
	zeroAmount.Amount = 0
	require.Error(t, zeroAmount.Validate())

	freePackage := valid
	freePackage.PackageType = "free"
	require.Error(t, freePackage.Validate())
}
