package models

import "time"

// Order is immutable after placement except for its status. TableNumber and
// TotalAmount are frozen copies taken when the cart was converted.
type Order struct {
	ID           string      `gorm:"type:varchar(36);primaryKey" json:"id"`
	RestaurantID string      `gorm:"type:varchar(36);not null;index" json:"restaurant_id"`
	TableID      string      `gorm:"type:varchar(36);not null" json:"table_id"`
	SessionID    string      `gorm:"type:varchar(36);not null;index" json:"session_id"`
	TableNumber  string      `gorm:"type:varchar(50);not null" json:"table_number"`
	Status       OrderStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	TotalAmount  float64     `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Comment      *string     `gorm:"type:text" json:"comment"`
	Items        []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt    time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"not null" json:"updated_at"`
}

// OrderStatusView is the reduced shape served by the status endpoint.
type OrderStatusView struct {
	OrderID   string      `json:"order_id"`
	Status    OrderStatus `json:"status"`
	UpdatedAt time.Time   `json:"updated_at"`
}
