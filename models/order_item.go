package models

// OrderItem is an immutable copy of a cart item made at order placement.
// Quantity and price are frozen; Dish is enriched with live data on read.
type OrderItem struct {
	ID       string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	OrderID  string    `gorm:"type:varchar(36);not null;index" json:"order_id"`
	DishID   string    `gorm:"type:varchar(36);not null" json:"dish_id"`
	Quantity int       `gorm:"not null" json:"quantity"`
	Price    float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Comment  *string   `gorm:"type:text" json:"comment"`
	Dish     *DishView `gorm:"-" json:"dish,omitempty"`
}
