package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/vsxchangeza/backend/internal/logger"
	"github.com/vsxchangeza/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	_ = gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{db: db}
}

var skillPool = []string{
	"photography", "videography", "graphic design", "copywriting",
	"social media", "illustration", "web design", "animation",
	"sound engineering", "event planning", "makeup artistry", "styling",
}

var locationPool = []string{
	"Johannesburg", "Cape Town", "Durban", "Pretoria",
	"Port Elizabeth", "Bloemfontein", "East London", "Stellenbosch",
}

// SeedDev seeds the development database with realistic data
func (s *Seeder) SeedDev() error {
	logger.Log.Info("Creating users...")
	users, err := s.seedUsers(50)
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	logger.Log.Info("Creating posts...")
	posts, err := s.seedPosts(users, 200)
	if err != nil {
		return fmt.Errorf("failed to seed posts: %w", err)
	}

	logger.Log.Info("Creating comments...")
	if err := s.seedComments(users, posts, 500); err != nil {
		return fmt.Errorf("failed to seed comments: %w", err)
	}

	return nil
}

// SeedTest seeds the test database with a small fixed set of accounts
func (s *Seeder) SeedTest() error {
	specs := []struct {
		email     string
		firstName string
		lastName  string
		role      string
	}{
		{"alice@example.com", "Alice", "Smith", "creative"},
		{"bob@example.com", "Bob", "Johnson", "client"},
		{"carol@example.com", "Carol", "Dlamini", "creative"},
	}

	var users []models.User
	for _, spec := range specs {
		var user models.User
		if err := s.db.Where("email = ?", spec.email).First(&user).Error; err == nil {
			users = append(users, user)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		user = models.User{
			Email:        spec.email,
			PasswordHash: string(hashed),
			FirstName:    spec.firstName,
			LastName:     spec.lastName,
			Role:         spec.role,
			Location:     locationPool[rand.Intn(len(locationPool))],
			Discoverable: true,
			Skills:       models.StringList{skillPool[rand.Intn(len(skillPool))]},
		}
		if err := s.db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create test user %s: %w", spec.email, err)
		}
		users = append(users, user)
	}

	posts, err := s.seedPosts(users, 5)
	if err != nil {
		return fmt.Errorf("failed to seed posts: %w", err)
	}
	if err := s.seedComments(users, posts, 10); err != nil {
		return fmt.Errorf("failed to seed comments: %w", err)
	}

	return nil
}

// Clean removes all rows from the seeded tables
func (s *Seeder) Clean() error {
	for _, model := range []interface{}{&models.Comment{}, &models.Post{}, &models.User{}} {
		if err := s.db.Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clean table: %w", err)
		}
	}
	return nil
}

func (s *Seeder) seedUsers(count int) ([]models.User, error) {
	// Same hash for every seeded account, hashing is the slow part
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		firstName := gofakeit.FirstName()
		lastName := gofakeit.LastName()

		role := "client"
		if rand.Intn(3) > 0 {
			role = "creative"
		}

		skills := models.StringList{}
		for _, idx := range rand.Perm(len(skillPool))[:1+rand.Intn(3)] {
			skills = append(skills, skillPool[idx])
		}

		rate := gofakeit.Float64Range(150, 2500)

		user := models.User{
			Email:        fmt.Sprintf("%s.%s%d@%s", firstName, lastName, i, gofakeit.DomainName()),
			PasswordHash: string(hashed),
			FirstName:    firstName,
			LastName:     lastName,
			Role:         role,
			Location:     locationPool[rand.Intn(len(locationPool))],
			Bio:          gofakeit.Sentence(12),
			AvatarURL:    fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/png?seed=%s%d", firstName, i),
			Discoverable: rand.Intn(10) > 0,
			Skills:       skills,
			Rate:         &rate,
			Availability: gofakeit.RandomString([]string{"weekdays", "weekends", "evenings", "flexible"}),
		}

		if err := s.db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}

	return users, nil
}

func (s *Seeder) seedPosts(users []models.User, count int) ([]models.Post, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to attach posts to")
	}

	posts := make([]models.Post, 0, count)
	for i := 0; i < count; i++ {
		author := users[rand.Intn(len(users))]

		post := models.Post{
			UserID:    author.ID,
			Text:      gofakeit.Sentence(5 + rand.Intn(20)),
			Approvals: rand.Intn(40),
			Shares:    rand.Intn(10),
			CreatedAt: gofakeit.DateRange(time.Now().AddDate(0, -3, 0), time.Now()),
		}

		// Roughly a third of posts carry media
		if rand.Intn(3) == 0 {
			if rand.Intn(4) == 0 {
				post.MediaURL = fmt.Sprintf("/uploads/seed-%s.mp4", gofakeit.UUID())
				post.MediaType = models.MediaKindVideo
			} else {
				post.MediaURL = fmt.Sprintf("/uploads/seed-%s.jpg", gofakeit.UUID())
				post.MediaType = models.MediaKindImage
			}
		}

		if err := s.db.Create(&post).Error; err != nil {
			return nil, fmt.Errorf("failed to create post: %w", err)
		}
		posts = append(posts, post)
	}

	return posts, nil
}

func (s *Seeder) seedComments(users []models.User, posts []models.Post, count int) error {
	if len(users) == 0 || len(posts) == 0 {
		return fmt.Errorf("no users or posts to attach comments to")
	}

	for i := 0; i < count; i++ {
		post := posts[rand.Intn(len(posts))]

		comment := models.Comment{
			PostID:    post.ID,
			UserID:    users[rand.Intn(len(users))].ID,
			Text:      gofakeit.Sentence(3 + rand.Intn(12)),
			CreatedAt: gofakeit.DateRange(post.CreatedAt, time.Now()),
		}
		if err := s.db.Create(&comment).Error; err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}
	}

	return nil
}
