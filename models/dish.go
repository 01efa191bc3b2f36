package models

import "time"

type Dish struct {
	ID              string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CategoryID      string    `gorm:"type:varchar(36);not null;index" json:"category_id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	NameEn          string    `gorm:"type:varchar(255)" json:"name_en"`
	Description     string    `gorm:"type:text" json:"description"`
	DescriptionEn   string    `gorm:"type:text" json:"description_en"`
	Price           float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL        string    `gorm:"type:varchar(255)" json:"image_url"`
	IsAvailable     bool      `gorm:"not null;default:true" json:"is_available"`
	Allergens       []string  `gorm:"serializer:json;type:text" json:"allergens"`
	IsVegetarian    bool      `gorm:"not null;default:false" json:"is_vegetarian"`
	IsVegan         bool      `gorm:"not null;default:false" json:"is_vegan"`
	PreparationTime int       `json:"preparation_time"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

// DishView is the client-facing dish shape: localized name/description, no
// raw *_en columns. It is also attached to cart and order items for display;
// the price here is the dish's current price, not the item snapshot.
type DishView struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	ImageURL        string   `json:"image_url"`
	IsAvailable     bool     `json:"is_available"`
	Allergens       []string `json:"allergens"`
	IsVegetarian    bool     `json:"is_vegetarian"`
	IsVegan         bool     `json:"is_vegan"`
	PreparationTime int      `json:"preparation_time"`
}

// Localized projects the dish for the given language. English values are used
// only when requested and non-empty; otherwise the Russian default is kept.
func (d *Dish) Localized(lang Language) DishView {
	name := d.Name
	description := d.Description
	if lang == LanguageEN {
		if d.NameEn != "" {
			name = d.NameEn
		}
		if d.DescriptionEn != "" {
			description = d.DescriptionEn
		}
	}
	allergens := d.Allergens
	if allergens == nil {
		allergens = []string{}
	}
	return DishView{
		ID:              d.ID,
		Name:            name,
		Description:     description,
		Price:           d.Price,
		ImageURL:        d.ImageURL,
		IsAvailable:     d.IsAvailable,
		Allergens:       allergens,
		IsVegetarian:    d.IsVegetarian,
		IsVegan:         d.IsVegan,
		PreparationTime: d.PreparationTime,
	}
}
