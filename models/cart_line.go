package models

import "time"

// CartOwner identifies whose cart a mutation targets and which store holds
// it. Authenticated owners live in the remote (Mongo) store keyed by UserID;
// anonymous owners live in the device-scoped Redis store keyed by DeviceID.
// The owner is always passed explicitly, never read from ambient state.
type CartOwner struct {
	UserID        string `json:"user_id,omitempty"`
	DeviceID      string `json:"device_id,omitempty"`
	Authenticated bool   `json:"authenticated"`
}

// Key returns the store key for this owner.
func (o CartOwner) Key() string {
	if o.Authenticated {
		return o.UserID
	}
	return o.DeviceID
}

// AddOnSelection is one flat-priced extra on a cart line. Add-ons never scale
// with guest count.
type AddOnSelection struct {
	DishID    string  `bson:"dish_id" json:"dish_id"`
	UnitPrice float64 `bson:"unit_price" json:"unit_price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

// EventDetails carries buyer-entered event metadata. Opaque to the engine.
type EventDetails struct {
	Location string `bson:"location,omitempty" json:"location,omitempty"`
	Date     string `bson:"date,omitempty" json:"date,omitempty"` // "YYYY-MM-DD"
}

// CartLine is one package configuration held in a buyer's cart. There is at
// most one line per (owner, package); re-adding the same package updates the
// existing line instead of creating a second one.
type CartLine struct {
	ID              string           `bson:"id" json:"id"`
	OwnerID         string           `bson:"owner_id" json:"owner_id"`
	PackageID       string           `bson:"package_id" json:"package_id"`
	CatererID       string           `bson:"caterer_id,omitempty" json:"caterer_id,omitempty"`
	SelectedDishIDs []string         `bson:"selected_dish_ids" json:"selected_dish_ids"`
	AddOns          []AddOnSelection `bson:"add_ons,omitempty" json:"add_ons,omitempty"`
	Guests          int              `bson:"guests" json:"guests"`
	Event           EventDetails     `bson:"event,omitempty" json:"event,omitempty"`
	PriceAtTime     float64          `bson:"price_at_time" json:"price_at_time"` // Frozen until the next mutation
	Currency        string           `bson:"currency,omitempty" json:"currency,omitempty"`
	Revision        int64            `bson:"revision" json:"revision"` // Monotonic per line; last write wins by issuance order
	CreatedAt       time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time        `bson:"updated_at" json:"updated_at"`
}
