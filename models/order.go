package models

import "time"

// Order is the record a cart converts into at checkout. Order fulfilment and
// status workflows are handled by the back-office surface; this engine only
// performs the CartLine snapshot at creation.
type Order struct {
	ID         string     `bson:"id" json:"id"`
	UserID     string     `bson:"user_id" json:"user_id"`
	Lines      []CartLine `bson:"lines" json:"lines"` // Snapshot of the lines at checkout time
	TotalPrice float64    `bson:"total_price" json:"total_price"`
	Currency   string     `bson:"currency,omitempty" json:"currency,omitempty"`
	Status     string     `bson:"status" json:"status"` // e.g. "pending"
	CreatedAt  time.Time  `bson:"created_at" json:"created_at"`
}
