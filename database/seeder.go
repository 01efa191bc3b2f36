package database

import (
	"time"

	"github.com/passione-app/passione-backend/models"
	"gorm.io/gorm"
)

// Fixed identifiers of the demo dataset. Kept stable so clients and tests can
// address the seeded records directly.
const (
	RestaurantID = "11111111-1111-1111-1111-111111111111"
	MenuID       = "22222222-2222-2222-2222-222222222222"
	Table1ID     = "33333333-3333-3333-3333-333333333331"
	Table2ID     = "33333333-3333-3333-3333-333333333332"

	CatAntipastiID = "44444444-4444-4444-4444-444444444441"
	CatPrimiID     = "44444444-4444-4444-4444-444444444442"
	CatSecondiID   = "44444444-4444-4444-4444-444444444443"
	CatDolciID     = "44444444-4444-4444-4444-444444444444"
	CatBevandeID   = "44444444-4444-4444-4444-444444444445"

	DishBruschettaID = "55555555-5555-5555-5555-555555555501"
	DishCarpaccioID  = "55555555-5555-5555-5555-555555555502"
	DishCapreseID    = "55555555-5555-5555-5555-555555555503"
	DishSpaghettiID  = "55555555-5555-5555-5555-555555555504"
	DishRisottoID    = "55555555-5555-5555-5555-555555555505"
	DishLasagnaID    = "55555555-5555-5555-5555-555555555506"
	DishSalmonID     = "55555555-5555-5555-5555-555555555507"
	DishSteakID      = "55555555-5555-5555-5555-555555555508"
	DishTiramisuID   = "55555555-5555-5555-5555-555555555509"
	DishPannaCottaID = "55555555-5555-5555-5555-555555555510"
	DishEspressoID   = "55555555-5555-5555-5555-555555555511"
	DishWineID       = "55555555-5555-5555-5555-555555555512"
)

// Migrate creates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Restaurant{},
		&models.Menu{},
		&models.Category{},
		&models.Dish{},
		&models.Table{},
		&models.Session{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
}

// Seed loads the Passione demo dataset: one restaurant, one active menu, two
// tables, five categories and twelve dishes.
func Seed(db *gorm.DB) error {
	restaurant := models.Restaurant{
		ID:       RestaurantID,
		Name:     "Passione",
		Address:  "ул. Итальянская, 15, Москва",
		Phone:    "+7 (495) 123-45-67",
		IsActive: true,
	}
	if err := db.Create(&restaurant).Error; err != nil {
		return err
	}

	menu := models.Menu{
		ID:           MenuID,
		RestaurantID: RestaurantID,
		Name:         "Основное меню",
		Description:  "Блюда итальянской кухни",
		IsActive:     true,
	}
	if err := db.Create(&menu).Error; err != nil {
		return err
	}

	tables := []models.Table{
		{ID: Table1ID, RestaurantID: RestaurantID, TableNumber: "1", QRCode: "passione-table-1", Capacity: 4, IsActive: true},
		{ID: Table2ID, RestaurantID: RestaurantID, TableNumber: "2", QRCode: "passione-table-2", Capacity: 4, IsActive: true},
	}
	if err := db.Create(&tables).Error; err != nil {
		return err
	}

	now := time.Now()
	categories := []models.Category{
		{ID: CatAntipastiID, MenuID: MenuID, Name: "Антипасти", NameEn: "Antipasti", Description: "Итальянские закуски", SortOrder: 1, IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: CatPrimiID, MenuID: MenuID, Name: "Первые блюда", NameEn: "Primi Piatti", Description: "Паста и ризотто", SortOrder: 2, IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: CatSecondiID, MenuID: MenuID, Name: "Вторые блюда", NameEn: "Secondi Piatti", Description: "Мясо и рыба", SortOrder: 3, IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: CatDolciID, MenuID: MenuID, Name: "Десерты", NameEn: "Dolci", Description: "Сладости", SortOrder: 4, IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: CatBevandeID, MenuID: MenuID, Name: "Напитки", NameEn: "Bevande", Description: "Кофе и вино", SortOrder: 5, IsActive: true, CreatedAt: now, UpdatedAt: now},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	dishes := []models.Dish{
		{
			ID: DishBruschettaID, CategoryID: CatAntipastiID,
			Name: "Брускетта с томатами", NameEn: "Bruschetta with tomatoes",
			Description: "Хрустящий хлеб с свежими томатами и базиликом", DescriptionEn: "Crispy bread with fresh tomatoes and basil",
			Price: 450, IsVegetarian: true, IsVegan: true, PreparationTime: 10, Allergens: []string{},
			ImageURL: "https://images.unsplash.com/photo-1572695157366-5e585ab2b69f?w=400&h=300&fit=crop",
		},
		{
			ID: DishCarpaccioID, CategoryID: CatAntipastiID,
			Name: "Карпаччо из говядины", NameEn: "Beef Carpaccio",
			Description: "Тонко нарезанная говядина с рукколой и пармезаном", DescriptionEn: "Thinly sliced beef with arugula and parmesan",
			Price: 890, PreparationTime: 15, Allergens: []string{"молоко"},
			ImageURL: "https://images.unsplash.com/photo-1588168333986-5078d3ae3976?w=400&h=300&fit=crop",
		},
		{
			ID: DishCapreseID, CategoryID: CatAntipastiID,
			Name: "Капрезе", NameEn: "Caprese",
			Description: "Моцарелла с томатами и базиликом", DescriptionEn: "Mozzarella with tomatoes and basil",
			Price: 650, IsVegetarian: true, PreparationTime: 10, Allergens: []string{"молоко"},
			ImageURL: "https://images.unsplash.com/photo-1608897013039-887f21d8c804?w=400&h=300&fit=crop",
		},
		{
			ID: DishSpaghettiID, CategoryID: CatPrimiID,
			Name: "Спагетти Карбонара", NameEn: "Spaghetti Carbonara",
			Description: "Спагетти с беконом, яйцом и пармезаном", DescriptionEn: "Spaghetti with bacon, egg and parmesan",
			Price: 750, PreparationTime: 20, Allergens: []string{"глютен", "яйца", "молоко"},
			ImageURL: "https://images.unsplash.com/photo-1612874742237-6526221588e3?w=400&h=300&fit=crop",
		},
		{
			ID: DishRisottoID, CategoryID: CatPrimiID,
			Name: "Ризотто с грибами", NameEn: "Mushroom Risotto",
			Description: "Кремовое ризотто с белыми грибами", DescriptionEn: "Creamy risotto with porcini mushrooms",
			Price: 820, IsVegetarian: true, PreparationTime: 25, Allergens: []string{"молоко"},
			ImageURL: "https://images.unsplash.com/photo-1476124369491-e7addf5db371?w=400&h=300&fit=crop",
		},
		{
			ID: DishLasagnaID, CategoryID: CatPrimiID,
			Name: "Лазанья Болоньезе", NameEn: "Lasagna Bolognese",
			Description: "Классическая лазанья с мясным рагу", DescriptionEn: "Classic lasagna with meat sauce",
			Price: 890, PreparationTime: 30, Allergens: []string{"глютен", "молоко"},
			ImageURL: "https://images.unsplash.com/photo-1574894709920-11b28e7367e3?w=400&h=300&fit=crop",
		},
		{
			ID: DishSalmonID, CategoryID: CatSecondiID,
			Name: "Лосось на гриле", NameEn: "Grilled Salmon",
			Description: "Филе лосося с овощами гриль", DescriptionEn: "Salmon fillet with grilled vegetables",
			Price: 1450, PreparationTime: 25, Allergens: []string{"рыба"},
			ImageURL: "https://images.unsplash.com/photo-1467003909585-2f8a72700288?w=400&h=300&fit=crop",
		},
		{
			ID: DishSteakID, CategoryID: CatSecondiID,
			Name: "Стейк Рибай", NameEn: "Ribeye Steak",
			Description: "Стейк из мраморной говядины 300г", DescriptionEn: "Marble beef steak 300g",
			Price: 2200, PreparationTime: 30, Allergens: []string{},
			ImageURL: "https://images.unsplash.com/photo-1600891964092-4316c288032e?w=400&h=300&fit=crop",
		},
		{
			ID: DishTiramisuID, CategoryID: CatDolciID,
			Name: "Тирамису", NameEn: "Tiramisu",
			Description: "Классический итальянский десерт", DescriptionEn: "Classic Italian dessert",
			Price: 490, IsVegetarian: true, PreparationTime: 5, Allergens: []string{"глютен", "яйца", "молоко"},
			ImageURL: "https://images.unsplash.com/photo-1571877227200-a0d98ea607e9?w=400&h=300&fit=crop",
		},
		{
			ID: DishPannaCottaID, CategoryID: CatDolciID,
			Name: "Панна Котта", NameEn: "Panna Cotta",
			Description: "Сливочный десерт с ягодным соусом", DescriptionEn: "Cream dessert with berry sauce",
			Price: 420, IsVegetarian: true, PreparationTime: 5, Allergens: []string{"молоко"},
			ImageURL: "https://images.unsplash.com/photo-1488477181946-6428a0291777?w=400&h=300&fit=crop",
		},
		{
			ID: DishEspressoID, CategoryID: CatBevandeID,
			Name: "Эспрессо", NameEn: "Espresso",
			Description: "Классический итальянский кофе", DescriptionEn: "Classic Italian coffee",
			Price: 180, IsVegetarian: true, IsVegan: true, PreparationTime: 3, Allergens: []string{},
			ImageURL: "https://images.unsplash.com/photo-1510707577719-ae7c14805e3a?w=400&h=300&fit=crop",
		},
		{
			ID: DishWineID, CategoryID: CatBevandeID,
			Name: "Вино Кьянти (бокал)", NameEn: "Chianti Wine (glass)",
			Description: "Красное итальянское вино", DescriptionEn: "Italian red wine",
			Price: 450, IsVegetarian: true, IsVegan: true, PreparationTime: 2, Allergens: []string{},
			ImageURL: "https://images.unsplash.com/photo-1510812431401-41d2bd2722f3?w=400&h=300&fit=crop",
		},
	}
	for i := range dishes {
		dishes[i].IsAvailable = true
		dishes[i].CreatedAt = now
		dishes[i].UpdatedAt = now
	}
	return db.Create(&dishes).Error
}
