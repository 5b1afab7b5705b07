package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateTransition_HappyPathHomeDelivery(t *testing.T) {
	order := Order{Status: StatusPlaced, DeliveryMethod: DeliveryMethodHome}

	steps := []string{StatusProcessing, StatusPacked, StatusOutForDelivery, StatusDelivered}
	for _, next := range steps {
		assert.NoError(t, order.ValidateTransition(next), "from %s to %s", order.Status, next)
		order.Status = next
	}
}

func TestValidateTransition_HappyPathStorePickup(t *testing.T) {
	order := Order{Status: StatusPlaced, DeliveryMethod: DeliveryMethodPickup}

	steps := []string{StatusProcessing, StatusPacked, StatusReadyForPickup, StatusPickedUp}
	for _, next := range steps {
		assert.NoError(t, order.ValidateTransition(next), "from %s to %s", order.Status, next)
		order.Status = next
	}
}

func TestValidateTransition_TerminalStatesRejectEverything(t *testing.T) {
	all := []string{
		StatusPlaced, StatusProcessing, StatusPacked, StatusOutForDelivery,
		StatusReadyForPickup, StatusDelivered, StatusPickedUp, StatusCancelled,
	}
	for _, terminal := range []string{StatusDelivered, StatusPickedUp, StatusCancelled} {
		order := Order{Status: terminal, DeliveryMethod: DeliveryMethodHome}
		for _, next := range all {
			assert.Error(t, order.ValidateTransition(next), "terminal %s must reject %s", terminal, next)
		}
	}
}

func TestValidateTransition_CancellableFromAnyNonTerminalState(t *testing.T) {
	for _, status := range []string{StatusPlaced, StatusProcessing, StatusPacked, StatusOutForDelivery, StatusReadyForPickup} {
		order := Order{Status: status, DeliveryMethod: DeliveryMethodHome}
		assert.NoError(t, order.ValidateTransition(StatusCancelled), "from %s", status)
	}
}

func TestValidateTransition_BranchRespectsDeliveryMethod(t *testing.T) {
	pickup := Order{Status: StatusPacked, DeliveryMethod: DeliveryMethodPickup}
	assert.Error(t, pickup.ValidateTransition(StatusOutForDelivery))
	assert.NoError(t, pickup.ValidateTransition(StatusReadyForPickup))

	home := Order{Status: StatusPacked, DeliveryMethod: DeliveryMethodHome}
	assert.Error(t, home.ValidateTransition(StatusReadyForPickup))
	assert.NoError(t, home.ValidateTransition(StatusOutForDelivery))
}

func TestValidateTransition_NoSkippingStates(t *testing.T) {
	order := Order{Status: StatusPlaced, DeliveryMethod: DeliveryMethodHome}
	assert.Error(t, order.ValidateTransition(StatusPacked))
	assert.Error(t, order.ValidateTransition(StatusDelivered))
	assert.Error(t, order.ValidateTransition(StatusPlaced))
}

func TestValidateTransition_UnknownStatus(t *testing.T) {
	order := Order{Status: StatusPlaced, DeliveryMethod: DeliveryMethodHome}
	assert.Error(t, order.ValidateTransition("shipped"))
}

func TestValidateRiderAssignment(t *testing.T) {
	active := Rider{Name: "Ravi", Phone: "9999999999", Status: RiderStatusActive}
	inactive := Rider{Name: "Mani", Status: RiderStatusInactive}

	packed := Order{Status: StatusPacked, DeliveryMethod: DeliveryMethodHome}
	assert.NoError(t, packed.ValidateRiderAssignment(active))
	assert.Error(t, packed.ValidateRiderAssignment(inactive))

	// Reassignment while already out for delivery is allowed.
	out := Order{Status: StatusOutForDelivery, DeliveryMethod: DeliveryMethodHome}
	assert.NoError(t, out.ValidateRiderAssignment(active))

	pickup := Order{Status: StatusPacked, DeliveryMethod: DeliveryMethodPickup}
	assert.Error(t, pickup.ValidateRiderAssignment(active))

	placed := Order{Status: StatusPlaced, DeliveryMethod: DeliveryMethodHome}
	assert.Error(t, placed.ValidateRiderAssignment(active))

	delivered := Order{Status: StatusDelivered, DeliveryMethod: DeliveryMethodHome}
	assert.Error(t, delivered.ValidateRiderAssignment(active))
}

func TestValidatePayment(t *testing.T) {
	pickup := Order{Status: StatusReadyForPickup, DeliveryMethod: DeliveryMethodPickup}
	for _, method := range PaymentMethods {
		assert.NoError(t, pickup.ValidatePayment(method))
	}
	assert.Error(t, pickup.ValidatePayment("Cheque"))

	home := Order{Status: StatusOutForDelivery, DeliveryMethod: DeliveryMethodHome}
	assert.Error(t, home.ValidatePayment("Cash"))

	cancelled := Order{Status: StatusCancelled, DeliveryMethod: DeliveryMethodPickup}
	assert.Error(t, cancelled.ValidatePayment("Cash"))
}

func TestValidatePayment_RepeatOverwriteAllowed(t *testing.T) {
	// Recording payment twice is permitted; the second call just
	// overwrites the method.
	order := Order{
		Status:         StatusPickedUp,
		DeliveryMethod: DeliveryMethodPickup,
		PaymentStatus:  PaymentStatusPaid,
		PaymentMethod:  "Cash",
	}
	assert.NoError(t, order.ValidatePayment("UPI"))
}

func TestEffectiveTime(t *testing.T) {
	placed := time.Date(2025, 3, 2, 14, 0, 0, 0, time.UTC)
	created := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)

	order := Order{PlacedAt: &placed}
	order.CreatedAt = created
	assert.Equal(t, placed, order.EffectiveTime())

	order.PlacedAt = nil
	assert.Equal(t, created, order.EffectiveTime())

	var blank Order
	// Neither timestamp present: falls back to now.
	assert.WithinDuration(t, time.Now(), blank.EffectiveTime(), time.Second)
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, IsTerminalStatus(StatusDelivered))
	assert.True(t, IsTerminalStatus(StatusPickedUp))
	assert.True(t, IsTerminalStatus(StatusCancelled))
	assert.False(t, IsTerminalStatus(StatusPlaced))
	assert.False(t, IsTerminalStatus("unknown"))

	assert.True(t, IsActiveStatus(StatusPlaced))
	assert.True(t, IsActiveStatus(StatusOutForDelivery))
	assert.False(t, IsActiveStatus(StatusReadyForPickup))
	assert.False(t, IsActiveStatus(StatusDelivered))
}
