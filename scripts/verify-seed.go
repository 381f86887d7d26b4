package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/vsxchangeza/backend/internal/database"
	"github.com/vsxchangeza/backend/internal/logger"
	"github.com/vsxchangeza/backend/internal/models"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
	if err := logger.Initialize("warn", ""); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	if err := database.Initialize(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	fmt.Println("Verifying seed data...")
	fmt.Println()

	var userCount, postCount, commentCount int64
	database.DB.Model(&models.User{}).Count(&userCount)
	database.DB.Model(&models.Post{}).Count(&postCount)
	database.DB.Model(&models.Comment{}).Count(&commentCount)

	fmt.Println("Record counts:")
	fmt.Printf("  Users:    %d\n", userCount)
	fmt.Printf("  Posts:    %d\n", postCount)
	fmt.Printf("  Comments: %d\n", commentCount)
	fmt.Println()

	var users []models.User
	database.DB.Limit(3).Find(&users)
	fmt.Println("Sample users:")
	for _, u := range users {
		fmt.Printf("  #%d %s %s <%s> role=%s location=%s skills=%v\n",
			u.ID, u.FirstName, u.LastName, u.Email, u.Role, u.Location, u.Skills)
	}

	var posts []models.Post
	database.DB.Preload("User").Order("created_at DESC").Limit(3).Find(&posts)
	fmt.Println()
	fmt.Println("Newest posts:")
	for _, p := range posts {
		text := p.Text
		if len(text) > 60 {
			text = text[:60] + "..."
		}
		fmt.Printf("  #%d by %s %s: %q approvals=%d media=%s\n",
			p.ID, p.User.FirstName, p.User.LastName, text, p.Approvals, p.MediaType)
	}
}
