package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"safetyvitals/internal/config"
	"safetyvitals/internal/model"
	"safetyvitals/internal/repository"
	"safetyvitals/internal/service"
)

// Seeds a demo organization with an admin user, the standard 5-point
// agreement template, and a sample safety-culture survey.
func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDatabase)
	orgRepo := repository.NewOrgRepo(db)
	surveyRepo := repository.NewSurveyRepo(db)
	templateRepo := repository.NewTemplateRepo(db)

	org := &model.Organization{
		ID:   uuid.NewString(),
		Name: "Demo Safety Org",
		Slug: "demo",
	}
	if err := orgRepo.Create(ctx, org); err != nil {
		log.Fatalf("Failed to create organization: %v", err)
	}

	hash, err := service.HashPassword("password123")
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	admin := &model.AdminUser{
		ID:           uuid.NewString(),
		OrgID:        org.ID,
		Email:        "admin@demo.example",
		PasswordHash: hash,
		Name:         "Demo Admin",
	}
	if err := orgRepo.CreateAdmin(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	agreement := &model.OptionTemplate{
		ID:      uuid.NewString(),
		OrgID:   org.ID,
		Name:    "5-point agreement",
		Options: []string{"Strongly Disagree", "Disagree", "Undecided", "Agree", "Strongly Agree"},
		Scores:  []float64{1, 2, 3, 4, 5},
	}
	yesNo := &model.OptionTemplate{
		ID:      uuid.NewString(),
		OrgID:   org.ID,
		Name:    "Yes / No",
		Options: []string{"No", "Yes"},
		Scores:  []float64{0, 1},
	}
	for _, tpl := range []*model.OptionTemplate{agreement, yesNo} {
		if err := templateRepo.Create(ctx, tpl); err != nil {
			log.Fatalf("Failed to create template %q: %v", tpl.Name, err)
		}
	}

	survey := &model.Survey{
		ID:            uuid.NewString(),
		OrgID:         org.ID,
		Title:         "Safety Culture Baseline",
		Description:   "Baseline assessment of day-to-day safety culture.",
		TargetCompany: "Acme Mining",
		Status:        model.SurveyOpen,
		Questions: []model.Question{
			{
				ID:         uuid.NewString(),
				Prompt:     "Leadership visibly prioritizes safety over production targets.",
				Dimension:  "1. Leadership",
				Type:       model.QuestionLikert,
				MinScore:   1,
				MaxScore:   5,
				TemplateID: agreement.ID,
				Required:   true,
			},
			{
				ID:           uuid.NewString(),
				Prompt:       "I sometimes skip safety steps to meet deadlines.",
				Dimension:    "2. Compliance",
				Type:         model.QuestionLikert,
				MinScore:     1,
				MaxScore:     5,
				ReverseScore: true,
				TemplateID:   agreement.ID,
				Required:     true,
			},
			{
				ID:         uuid.NewString(),
				Prompt:     "Have you received safety training in the last 12 months?",
				Dimension:  "3. Training",
				Type:       model.QuestionBinary,
				MinScore:   1,
				MaxScore:   5,
				TemplateID: yesNo.ID,
			},
			{
				ID:        uuid.NewString(),
				Prompt:    "What single change would most improve safety at your site?",
				Dimension: "4. Feedback",
				Type:      model.QuestionText,
			},
		},
	}
	if err := surveyRepo.Create(ctx, survey); err != nil {
		log.Fatalf("Failed to create survey: %v", err)
	}

	fmt.Println("Seeded demo data:")
	fmt.Printf("  org:      %s\n", org.ID)
	fmt.Printf("  admin:    %s / password123\n", admin.Email)
	fmt.Printf("  survey:   %s\n", survey.ID)
	fmt.Printf("  form URL: /v1/surveys/%s/form\n", survey.ID)
}
