package models

type Restaurant struct {
	ID       string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Address  string `gorm:"type:varchar(255)" json:"address"`
	Phone    string `gorm:"type:varchar(50)" json:"phone"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`
}
