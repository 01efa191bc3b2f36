package models

type Menu struct {
	ID           string `gorm:"type:varchar(36);primaryKey" json:"id"`
	RestaurantID string `gorm:"type:varchar(36);not null;index" json:"restaurant_id"`
	Name         string `gorm:"type:varchar(255);not null" json:"name"`
	Description  string `gorm:"type:text" json:"description"`
	IsActive     bool   `gorm:"not null;default:true" json:"is_active"`
}

// MenuView is the localized menu tree served to visitors.
type MenuView struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Categories  []CategoryView `json:"categories"`
}
