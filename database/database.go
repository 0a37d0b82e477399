package database

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/michalswider/electronic-gradebook/config"
	"github.com/michalswider/electronic-gradebook/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Class{},
		&models.Subject{},
		&models.Grade{},
		&models.Attendance{},
	)
}

// SeedAdmin inserts the bootstrap admin/admin account on first start.
// Existing installs are left untouched.
func SeedAdmin() {
	var existing models.User
	err := DB.Where("username = ?", "admin").First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("failed to query users: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash bootstrap password: %v", err)
	}
	admin := models.User{
		FirstName:      "admin",
		LastName:       "admin",
		Username:       "admin",
		HashedPassword: string(hashed),
		Role:           models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Fatalf("failed to insert bootstrap admin: %v", err)
	}
	log.Printf("seeded bootstrap admin account (username=admin)")
}
