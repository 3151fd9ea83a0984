package main

import (
	"fmt"

	"mini-social/internal/model"
	"mini-social/pkg/config"
	"mini-social/pkg/database"
	"mini-social/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	testUsers := []struct {
		name     string
		email    string
		password string
	}{
		{"Alice", "alice@example.com", "password123"},
		{"Bob", "bob@example.com", "password123"},
	}

	userIDs := make([]string, 0, len(testUsers))

	for _, userData := range testUsers {
		var existing model.UserModel
		result := db.Where("email = ?", userData.email).First(&existing)
		if result.Error == nil {
			log.Info("User %s already exists, skipping", userData.email)
			userIDs = append(userIDs, existing.ID)
			continue
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(userData.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		user := &model.UserModel{
			Name:     userData.name,
			Email:    userData.email,
			Password: string(hashedPassword),
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}

		log.Info("Created user: %s (%s)", user.Name, user.Email)
		userIDs = append(userIDs, user.ID)
	}

	if len(userIDs) < 2 {
		return nil
	}

	var postCount int64
	if err := db.Model(&model.PostModel{}).Count(&postCount).Error; err != nil {
		return err
	}
	if postCount > 0 {
		log.Info("Posts already exist, skipping")
		return nil
	}

	post := &model.PostModel{
		AuthorID: userIDs[0],
		Title:    "Hello world",
		Body:     "First post on the platform.",
	}
	if err := db.Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	log.Info("Created post: %s", post.Title)

	comment := &model.CommentModel{
		PostID:   post.ID,
		AuthorID: userIDs[1],
		Body:     "Welcome!",
	}
	if err := db.Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	like := &model.LikeModel{
		UserID: userIDs[1],
		PostID: post.ID,
	}
	if err := db.Create(like).Error; err != nil {
		return fmt.Errorf("failed to create like: %w", err)
	}

	return nil
}
