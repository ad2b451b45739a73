package service

import (
	"errors"
	"testing"
	"time"

	"github.com/superman-store/internal/constants"
	"github.com/superman-store/internal/models"
)

func TestCanTransitionDelivery(t *testing.T) {
	cases := []struct {
		from string
		to   string
		want bool
	}{
		{constants.DeliveryStatusProcessing, constants.DeliveryStatusProcessing, true},
		{constants.DeliveryStatusProcessing, constants.DeliveryStatusShipped, true},
		{constants.DeliveryStatusProcessing, constants.DeliveryStatusDelivered, true},
		{constants.DeliveryStatusShipped, constants.DeliveryStatusInTransit, true},
		{constants.DeliveryStatusInTransit, constants.DeliveryStatusShipped, false},
		{constants.DeliveryStatusOutForDelivery, constants.DeliveryStatusProcessing, false},
		{constants.DeliveryStatusInTransit, constants.DeliveryStatusFailed, true},
		{constants.DeliveryStatusProcessing, constants.DeliveryStatusReturned, true},
		{constants.DeliveryStatusDelivered, constants.DeliveryStatusDelivered, true},
		{constants.DeliveryStatusDelivered, constants.DeliveryStatusReturned, false},
		{constants.DeliveryStatusFailed, constants.DeliveryStatusShipped, false},
		{constants.DeliveryStatusReturned, constants.DeliveryStatusFailed, false},
	}
	for _, tc := range cases {
		if got := canTransitionDelivery(tc.from, tc.to); got != tc.want {
			t.Fatalf("%s -> %s: want %v got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestApplyDeliveryTransitionSkippingShipped(t *testing.T) {
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	delivery := &models.Delivery{Status: constants.DeliveryStatusProcessing, MinDays: 2, MaxDays: 5}

	if err := applyDeliveryTransition(delivery, constants.DeliveryStatusInTransit, "", now); err != nil {
		t.Fatalf("transition failed: %v", err)
	}
	if delivery.ShippingDate == nil || !delivery.ShippingDate.Equal(now) {
		t.Fatalf("shipping_date should be backfilled, got %v", delivery.ShippingDate)
	}
	// (2 + 5) / 2 = 3.5 天
	want := now.Add(84 * time.Hour)
	if delivery.EstimatedDelivery == nil || !delivery.EstimatedDelivery.Equal(want) {
		t.Fatalf("estimated_delivery want %s got %v", want, delivery.EstimatedDelivery)
	}
	if delivery.Notes != nil {
		t.Fatalf("blank note must not be logged")
	}
	if !delivery.IsDelayed(want.Add(time.Minute)) {
		t.Fatalf("expected delayed past the estimate")
	}
}

func TestApplyDeliveryTransitionRejectsBackwards(t *testing.T) {
	delivery := &models.Delivery{Status: constants.DeliveryStatusOutForDelivery, MinDays: 1, MaxDays: 2}
	err := applyDeliveryTransition(delivery, constants.DeliveryStatusShipped, "oops", time.Now())
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
	if delivery.Status != constants.DeliveryStatusOutForDelivery || delivery.Notes != nil {
		t.Fatalf("rejected transition must not mutate delivery")
	}
}
