package models

type Table struct {
	ID           string `gorm:"type:varchar(36);primaryKey" json:"id"`
	RestaurantID string `gorm:"type:varchar(36);not null;index" json:"restaurant_id"`
	TableNumber  string `gorm:"type:varchar(50);not null" json:"table_number"`
	QRCode       string `gorm:"type:varchar(255);not null;uniqueIndex" json:"qr_code"`
	Capacity     int    `json:"capacity"`
	IsActive     bool   `gorm:"not null;default:true" json:"is_active"`
}
