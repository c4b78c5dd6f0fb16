package bootstrap

import (
	"log"

	"github.com/shivamraghav1010/Player/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdminUser creates the development admin account. Credentials for real
// environments come from the external identity system, never from here.
func SeedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).
		Where("email = ?", "admin@player.dev").
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin user already exists, skipping seed")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := model.User{
		Username:     "admin",
		Email:        "admin@player.dev",
		PasswordHash: string(hashed),
		Role:         model.RoleAdmin,
		Country:      "India",
		State:        "Delhi",
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("Admin user seeded successfully")
	return nil
}

// SeedSports inserts the default sports catalog when missing.
func SeedSports(db *gorm.DB) error {
	defaults := []model.Sport{
		{Name: "Cricket", Order: 1, IsActive: true},
		{Name: "Football", Order: 2, IsActive: true},
		{Name: "Basketball", Order: 3, IsActive: true},
		{Name: "Badminton", Order: 4, IsActive: true},
		{Name: "Athletics", Order: 5, IsActive: true},
		{Name: "Swimming", Order: 6, IsActive: true},
	}

	for _, sport := range defaults {
		var count int64
		if err := db.Model(&model.Sport{}).
			Where("name = ?", sport.Name).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := db.Create(&sport).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
