package models

import "gorm.io/gorm"

const (
	PaymentMethodCOD = "cod"
	PaymentMethodUPI = "upi"

	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"

	OrderStatusPending  = "pending"
	OrderStatusApproved = "approved"
	OrderStatusRejected = "rejected"
	// OrderStatusCompleted is part of the status enum but no transition
	// produces it yet.
	OrderStatusCompleted = "completed"
)

type Order struct {
	gorm.Model
	UserID           uint        `json:"userId"`
	User             *User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Items            []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalAmount      float64     `json:"totalAmount"`
	PaymentMethod    string      `json:"paymentMethod"`
	PaymentStatus    string      `json:"paymentStatus"`
	UpiTransactionID string      `json:"upiTransactionId,omitempty"`
	Status           string      `json:"status"`
	RejectionReason  string      `json:"rejectionReason,omitempty"`
}

// OrderItem is a snapshot of a sweet at checkout time; later catalog edits
// do not touch it.
type OrderItem struct {
	gorm.Model
	OrderID  uint    `json:"orderId"`
	SweetID  uint    `json:"sweetId"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type OrderLineData struct {
	SweetID  uint `json:"sweetId" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,gt=0"`
}

type CreateOrderData struct {
	Items            []OrderLineData `json:"items" binding:"omitempty,dive"`
	PaymentMethod    string          `json:"paymentMethod"`
	UpiTransactionID string          `json:"upiTransactionId"`
}

type RejectOrderData struct {
	Reason string `json:"reason"`
}
