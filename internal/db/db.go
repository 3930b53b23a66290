package db

import (
	"log"
	"os"
	"time"

	"factshub/internal/models"
	"factshub/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=factshub port=5432 sslmode=disable"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	Seed(DB)
}

// Migrate creates or updates the schema. Split out from Init so tests can
// run it against their own database.
func Migrate(g *gorm.DB) error {
	return g.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Fact{},
		&models.Comment{},
		&models.Reaction{},
	)
}

// Seed inserts the default categories, accounts and sample facts. Each block
// only runs against an empty table, so restarts are safe.
func Seed(g *gorm.DB) {
	seedCategories(g)
	seedUsers(g)
	seedFacts(g)
}

func seedCategories(g *gorm.DB) {
	var count int64
	g.Model(&models.Category{}).Count(&count)
	if count > 0 {
		return
	}

	names := []string{"Historia", "Nauka", "Kosmos", "Natura", "Technologia", "Zwierzęta", "Zdrowie"}
	for _, name := range names {
		if err := g.Create(&models.Category{Name: name}).Error; err != nil {
			log.Printf("Failed to create category %s: %v", name, err)
		}
	}
	log.Println("Initial categories created")
}

func seedUsers(g *gorm.DB) {
	var count int64
	g.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	adminPass := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPass == "" {
		adminPass = "admin123"
	}
	userPass := os.Getenv("SEED_USER_PASSWORD")
	if userPass == "" {
		userPass = "user123"
	}

	accounts := []struct {
		username string
		email    string
		password string
		role     models.Role
	}{
		{"admin", "admin@factshub.pl", adminPass, models.RoleAdmin},
		{"testuser", "user@factshub.pl", userPass, models.RoleUser},
		{"moderator", "moderator@factshub.pl", userPass, models.RoleModerator},
	}

	for _, a := range accounts {
		hash, err := utils.HashPassword(a.password)
		if err != nil {
			log.Printf("Failed to hash seed password for %s: %v", a.username, err)
			continue
		}
		user := models.User{
			Username: a.username,
			Email:    a.email,
			Password: hash,
			Role:     a.role,
		}
		if err := g.Create(&user).Error; err != nil {
			log.Printf("Failed to create user %s: %v", a.username, err)
		}
	}
	log.Println("Default accounts created")
}

func seedFacts(g *gorm.DB) {
	var count int64
	g.Model(&models.Fact{}).Count(&count)
	if count > 0 {
		return
	}

	var animals models.Category
	if err := g.Where("name = ?", "Zwierzęta").First(&animals).Error; err != nil {
		return
	}
	var admin, tester models.User
	g.Where("username = ?", "admin").First(&admin)
	g.Where("username = ?", "testuser").First(&tester)

	now := time.Now()
	samples := []models.Fact{
		{
			Title:       "Słonie mają niezwykłą pamięć",
			Content:     "Słonie mogą zapamiętać mapy terenu i pamiętać je przez wiele lat.",
			Source:      "https://en.wikipedia.org/wiki/Elephant",
			CategoryID:  &animals.ID,
			AuthorID:    &admin.ID,
			Status:      models.FactStatusPublished,
			PublishedAt: &now,
		},
		{
			Title:       "Okapi mają fioletowy język",
			Content:     "Okapi posiadają fioletowy język, którym mogą się umyć.",
			Source:      "https://en.wikipedia.org/wiki/Okapi",
			CategoryID:  &animals.ID,
			AuthorID:    &admin.ID,
			Status:      models.FactStatusPublished,
			PublishedAt: &now,
		},
		{
			Title:       "Mózg ośmiornicy w ramionach",
			Content:     "Dwie trzecie neuronów ośmiornicy znajduje się w jej ramionach.",
			Source:      "https://en.wikipedia.org/wiki/Octopus",
			CategoryID:  &animals.ID,
			AuthorID:    &admin.ID,
			Status:      models.FactStatusPublished,
			PublishedAt: &now,
		},
		{
			Title:      "Naukowcy odkryli nowy gatunek papugi",
			Content:    "W 2024 roku naukowcy odkryli nowy gatunek papugi w Amazonce.",
			Source:     "https://example.com/papuga",
			CategoryID: &animals.ID,
			AuthorID:   &tester.ID,
			Status:     models.FactStatusPending,
		},
	}

	for i := range samples {
		if err := g.Create(&samples[i]).Error; err != nil {
			log.Printf("Failed to create sample fact %q: %v", samples[i].Title, err)
		}
	}

	if tester.ID != 0 && samples[0].ID != 0 {
		comment := models.Comment{
			FactID:  samples[0].ID,
			UserID:  &tester.ID,
			Content: "Niesamowite!",
		}
		if err := g.Create(&comment).Error; err != nil {
			log.Printf("Failed to create sample comment: %v", err)
		}
	}
	log.Println("Sample facts created")
}
