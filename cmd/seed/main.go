package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"renomester/internal/config"
	"renomester/internal/db"
	"renomester/internal/model"
	"renomester/internal/repository"
)

// seedUser is one demo account to create.
type seedUser struct {
	Email    string
	Name     string
	Role     string
	Password string
}

var seedUsers = []seedUser{
	{Email: "admin@projektmester.hu", Name: "Kovács Admin János", Role: model.RoleAdmin, Password: "admin"},
	{Email: "user@projektmester.hu", Name: "Szabó Péter", Role: model.RoleUser, Password: "user123"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.CustomStatus{},
		&model.Project{},
		&model.Task{},
		&model.Material{},
		&model.Cost{},
		&model.AppFile{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	statusRepo := repository.NewStatusRepository(gormDB)

	for _, v := range model.DefaultStatuses {
		if err := statusRepo.Add(ctx, v); err != nil {
			log.Fatalf("Failed to seed status %s: %v", v, err)
		}
	}
	log.Printf("Seeded %d default statuses", len(model.DefaultStatuses))

	users, err := ensureUsers(ctx, userRepo)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Printf("Seeded %d users", len(users))

	if err := ensureDemoProject(ctx, projectRepo, users); err != nil {
		log.Fatalf("Failed to seed demo project: %v", err)
	}

	log.Println("Seed completed successfully!")
}

// ensureUsers upserts the demo accounts by email so re-running is safe.
func ensureUsers(ctx context.Context, repo repository.UserRepository) (map[string]*model.User, error) {
	out := make(map[string]*model.User, len(seedUsers))
	for _, su := range seedUsers {
		existing, err := repo.FindByEmail(ctx, su.Email)
		if err != nil && err != gorm.ErrRecordNotFound {
			return nil, err
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}

		user := &model.User{
			Email:        su.Email,
			Name:         su.Name,
			Role:         su.Role,
			PasswordHash: string(hashed),
		}
		if existing != nil {
			user.ID = existing.ID
			user.CreatedAt = existing.CreatedAt
		}
		if err := repo.Upsert(ctx, user); err != nil {
			return nil, err
		}
		out[su.Email] = user
	}
	return out, nil
}

// ensureDemoProject creates the demo project once, owned by the admin and
// shared with the demo user.
func ensureDemoProject(ctx context.Context, repo repository.ProjectRepository, users map[string]*model.User) error {
	admin := users["admin@projektmester.hu"]
	demo := users["user@projektmester.hu"]

	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	for i := range existing {
		if existing[i].Name == "Belvárosi Lakásfelújítás" {
			log.Println("Demo project already present, skipping")
			return nil
		}
	}

	createdAt, _ := time.Parse(time.RFC3339, "2024-02-15T10:00:00Z")
	project := &model.Project{
		Name:          "Belvárosi Lakásfelújítás",
		Description:   "### Projekt Célja\nA teljes elektromos hálózat és vízhálózat cseréje, valamint burkolás.",
		Status:        "kivitelezes",
		CustomerName:  "Nagy Erzsébet",
		CustomerEmail: "nagy.erzsi@example.com",
		CustomerPhone: "+36 30 123 4567",
		Location:      "1051 Budapest, Sas utca 4.",
		StartDate:     "2024-03-01",
		EndDate:       "2024-05-15",
		CreatedAt:     createdAt,
		CreatedBy:     admin.Name,
		CreatedByID:   admin.ID,
		AssignedUsers: model.StringList{admin.ID, demo.ID},
	}
	if err := repo.Upsert(ctx, project); err != nil {
		return err
	}
	log.Printf("Seeded demo project %s", project.ID)
	return nil
}
