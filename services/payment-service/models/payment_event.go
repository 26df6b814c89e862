package models

import "time"

// PaymentEvent is published to kafka on every payment status transition.
type PaymentEvent struct {
	Type      string    `json:"type"`
	PaymentID string    `json:"payment_id"`
	OrderID   string    `json:"order_id"`
	IsPayed   bool      `json:"is_payed"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
