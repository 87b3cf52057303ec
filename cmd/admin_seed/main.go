// Seeds the initial dashboard admin account from the environment.
package main

import (
	"log"
	"os"

	"nisapoti-admin/internal/config"
	"nisapoti-admin/internal/models"
	"nisapoti-admin/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()

	adminName := os.Getenv("ADMIN_NAME")
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminName == "" || adminEmail == "" || adminPassword == "" {
		log.Fatal("ADMIN_NAME, ADMIN_EMAIL and ADMIN_PASSWORD must be set in environment")
	}

	repositories.InitDB()
	defer func() {
		if repositories.DB != nil {
			if sqlDB, err := repositories.DB.DB(); err == nil {
				sqlDB.Close()
			}
		}
	}()

	var existing models.AdminUser
	if err := repositories.DB.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		log.Println("Admin user already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin := models.AdminUser{
		Name:         adminName,
		Email:        adminEmail,
		PasswordHash: string(hash),
		IsActive:     true,
	}

	if err := repositories.NewAdminUserRepository(repositories.DB).Create(&admin); err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	log.Println("Admin account created successfully")
}
