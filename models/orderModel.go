package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order statuses. An order moves through the placed -> processing ->
// packed pipeline and then branches by delivery method: home delivery
// goes out_for_delivery -> delivered, store pickup goes
// ready_for_pickup -> picked_up. cancelled is reachable from any
// non-terminal state.
const (
	StatusPlaced         = "placed"
	StatusProcessing     = "processing"
	StatusPacked         = "packed"
	StatusOutForDelivery = "out_for_delivery"
	StatusReadyForPickup = "ready_for_pickup"
	StatusDelivered      = "delivered"
	StatusPickedUp       = "picked_up"
	StatusCancelled      = "cancelled"
)

const (
	DeliveryMethodHome   = "Home Delivery"
	DeliveryMethodPickup = "Store Pickup"
)

const PaymentStatusPaid = "Paid"

// PaymentMethods is the fixed set accepted when staff records an
// over-the-counter payment for a pickup order.
var PaymentMethods = []string{"Cash", "UPI", "Card"}

// allowedTransitions defines valid status transitions. Key is the
// current status, value is the set of statuses it can move to.
var allowedTransitions = map[string][]string{
	StatusPlaced:         {StatusProcessing, StatusCancelled},
	StatusProcessing:     {StatusPacked, StatusCancelled},
	StatusPacked:         {StatusOutForDelivery, StatusReadyForPickup, StatusCancelled},
	StatusOutForDelivery: {StatusDelivered, StatusCancelled},
	StatusReadyForPickup: {StatusPickedUp, StatusCancelled},
	StatusDelivered:      {},
	StatusPickedUp:       {},
	StatusCancelled:      {},
}

type Order struct {
	gorm.Model
	OrderCode       string         `json:"orderId" gorm:"size:32;uniqueIndex"`
	UserID          int            `json:"userId"`
	UserName        string         `json:"userName"`
	UserEmail       string         `json:"userEmail"`
	UserPhone       string         `json:"userPhone"`
	DeliveryMethod  string         `json:"deliveryMethod"`
	ShippingAddress datatypes.JSON `json:"shippingAddress"`
	Items           []OrderItem    `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Subtotal        float64        `json:"subtotal"`
	DiscountAmount  float64        `json:"discountAmount"`
	AppliedCode     string         `json:"appliedCode"`
	TotalAmount     float64        `json:"totalAmount"`
	Status          string         `json:"status"`
	PaymentStatus   string         `json:"paymentStatus"`
	PaymentMethod   string         `json:"paymentMethod"`
	PaidAt          *time.Time     `json:"paidAt"`
	RiderID         int            `json:"riderId"`
	RiderName       string         `json:"riderName"`
	RiderPhone      string         `json:"riderPhone"`
	PlacedAt        *time.Time     `json:"placedAt"`
}

type OrderItem struct {
	gorm.Model
	OrderID        int     `json:"orderId"`
	ProductId      int     `json:"productId"`
	Name           string  `json:"name"`
	SelectedWeight string  `json:"selectedWeight"`
	Price          float64 `json:"price"`
	Qty            int     `json:"qty"`
	Category       string  `json:"category"`
}

// IsValidStatus reports whether s is a known order status.
func IsValidStatus(s string) bool {
	_, ok := allowedTransitions[s]
	return ok
}

// IsTerminalStatus reports whether s admits no further transitions.
func IsTerminalStatus(s string) bool {
	next, ok := allowedTransitions[s]
	return ok && len(next) == 0
}

// IsActiveStatus reports whether an order in status s counts toward
// the "in kitchen/transit" figure on the dashboard. Pickup orders
// waiting at the counter are not counted.
func IsActiveStatus(s string) bool {
	switch s {
	case StatusPlaced, StatusProcessing, StatusPacked, StatusOutForDelivery:
		return true
	}
	return false
}

// ValidateTransition checks that moving the order from its current
// status to next is allowed, including the delivery-method branch at
// packed.
func (o *Order) ValidateTransition(next string) error {
	if !IsValidStatus(next) {
		return fmt.Errorf("unknown status %q", next)
	}
	allowed, ok := allowedTransitions[o.Status]
	if !ok {
		return fmt.Errorf("order has unknown status %q", o.Status)
	}
	found := false
	for _, s := range allowed {
		if s == next {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("cannot move order from %s to %s", o.Status, next)
	}
	switch next {
	case StatusOutForDelivery:
		if o.DeliveryMethod != DeliveryMethodHome {
			return fmt.Errorf("only home delivery orders go out for delivery")
		}
	case StatusReadyForPickup:
		if o.DeliveryMethod != DeliveryMethodPickup {
			return fmt.Errorf("only store pickup orders become ready for pickup")
		}
	}
	return nil
}

// ValidateRiderAssignment checks that rider can be assigned to the
// order. Assignment is what moves a packed home-delivery order out
// for delivery; reassignment is permitted while the order is already
// out for delivery.
func (o *Order) ValidateRiderAssignment(rider Rider) error {
	if o.DeliveryMethod != DeliveryMethodHome {
		return fmt.Errorf("riders are only assigned to home delivery orders")
	}
	if o.Status != StatusPacked && o.Status != StatusOutForDelivery {
		return fmt.Errorf("cannot assign a rider to a %s order", o.Status)
	}
	if rider.Status != RiderStatusActive {
		return fmt.Errorf("rider %s is not active", rider.Name)
	}
	return nil
}

// ValidatePayment checks that a counter payment may be recorded on
// the order. Recording twice simply overwrites the method; the end
// state is idempotent.
func (o *Order) ValidatePayment(method string) error {
	if o.DeliveryMethod != DeliveryMethodPickup {
		return fmt.Errorf("counter payments apply to store pickup orders only")
	}
	if o.Status == StatusCancelled {
		return fmt.Errorf("cannot record payment on a cancelled order")
	}
	for _, m := range PaymentMethods {
		if m == method {
			return nil
		}
	}
	return fmt.Errorf("unsupported payment method %q", method)
}

// EffectiveTime resolves the timestamp used for revenue bucketing:
// the client-reported placement time when present, else the record
// creation time, else now.
func (o *Order) EffectiveTime() time.Time {
	if o.PlacedAt != nil && !o.PlacedAt.IsZero() {
		return *o.PlacedAt
	}
	if !o.CreatedAt.IsZero() {
		return o.CreatedAt
	}
	return time.Now()
}
