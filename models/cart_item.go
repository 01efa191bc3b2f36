package models

// CartItem snapshots the dish price at add time; later dish price changes do
// not affect it. Dish carries the current dish state for display only.
type CartItem struct {
	ID       string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CartID   string    `gorm:"type:varchar(36);not null;index" json:"cart_id"`
	DishID   string    `gorm:"type:varchar(36);not null" json:"dish_id"`
	Quantity int       `gorm:"not null" json:"quantity"`
	Price    float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Comment  *string   `gorm:"type:text" json:"comment"`
	Dish     *DishView `gorm:"-" json:"dish,omitempty"`
}
