package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"tableside/entity"
)

// SeedAdmin creates the first admin account. Staff accounts are never
// self-registered, so without this seed nobody could log in.
func SeedAdmin(cfg *Config) error {
	username := cfg.AdminUsername
	pass := cfg.AdminPassword
	if username == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", username)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username:  username,
		Password:  string(hash),
		Role:      entity.RoleAdmin,
		Superuser: true,
	}
	return db.Create(&admin).Error
}
