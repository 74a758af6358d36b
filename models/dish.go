package models

// Category groups dishes on a caterer's menu. Reference data.
type Category struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// Dish is a single menu item offered by a caterer. Reference data owned by
// the caterer-management surface; read-only inside this engine.
type Dish struct {
	ID         string   `bson:"id" json:"id"`
	Name       string   `bson:"name" json:"name"`
	Category   Category `bson:"category" json:"category"`
	UnitPrice  float64  `bson:"unit_price" json:"unit_price"` // Flat price per unit, in whole currency units
	IsAddon    bool     `bson:"is_addon,omitempty" json:"is_addon,omitempty"`
	ImageURL   string   `bson:"image_url,omitempty" json:"image_url,omitempty"`
	CatererID  string   `bson:"caterer_id,omitempty" json:"caterer_id,omitempty"`
	Vegetarian bool     `bson:"vegetarian,omitempty" json:"vegetarian,omitempty"`
}
