// Command createuser creates a user account from the command line, mainly
// for seeding development and test environments.
package main

import (
	"flag"
	"fmt"
	"os"

	"cryptofolio/internal/database"
	"cryptofolio/internal/logger"
	"cryptofolio/internal/services"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Create user error: %v", err)
	}
}

func run() error {
	email := flag.String("email", "", "email address of the new user")
	password := flag.String("password", "", "password of the new user")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		return fmt.Errorf("both -email and -password are required")
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	userService := services.NewUserService(dbManager.DB())
	user, err := userService.CreateUser(*email, *password)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	logger.Get().Infof("User %s created with ID %d", user.Email, user.ID)
	return nil
}
