package models

import "time"

type Category struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	MenuID      string    `gorm:"type:varchar(36);not null;index" json:"menu_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	NameEn      string    `gorm:"type:varchar(255)" json:"name_en"`
	Description string    `gorm:"type:text" json:"description"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// LocalizedName returns the English name when requested and present.
func (c *Category) LocalizedName(lang Language) string {
	if lang == LanguageEN && c.NameEn != "" {
		return c.NameEn
	}
	return c.Name
}

// CategoryView is a category inside the menu tree. The description is served
// as stored; only the name carries an English variant.
type CategoryView struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	SortOrder   int        `json:"sort_order"`
	Dishes      []DishView `json:"dishes"`
}
