package models

// Cart is the session's pending selection. The total is derived from the
// current items on every read and never stored.
type Cart struct {
	ID          string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	SessionID   string     `gorm:"type:varchar(36);not null;uniqueIndex" json:"session_id"`
	TotalAmount float64    `gorm:"-" json:"total_amount"`
	Items       []CartItem `gorm:"foreignKey:CartID" json:"items"`
}
