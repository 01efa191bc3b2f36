package models

import "time"

// Session is a visitor's scoped interaction started by scanning a table QR
// code. Sessions own exactly one cart and are never expired.
type Session struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	SessionToken string    `gorm:"type:varchar(36);not null" json:"session_token"`
	TableID      string    `gorm:"type:varchar(36);not null;index" json:"table_id"`
	RestaurantID string    `gorm:"type:varchar(36);not null" json:"restaurant_id"`
	Language     Language  `gorm:"type:varchar(2);not null;default:'ru'" json:"language"`
	DeviceID     string    `gorm:"type:varchar(255);not null" json:"device_id"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}
