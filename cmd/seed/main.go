package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"cyberassess/internal/config"
	"cyberassess/internal/model"
	"cyberassess/internal/repository"
)

func main() {
	godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB)
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		log.Fatal("Failed to create indexes:", err)
	}

	employeeRepo := repository.NewEmployeeRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	questionRepo := repository.NewQuestionRepo(db)
	inputRepo := repository.NewInputRepo(db)
	optionRepo := repository.NewOptionRepo(db)
	productRepo := repository.NewProductRepo(db)

	seedEmployees(ctx, employeeRepo)
	seedCustomers(ctx, customerRepo)
	seedCatalog(ctx, categoryRepo, questionRepo, inputRepo, optionRepo, productRepo)

	log.Println("Seed complete")
}

func seedEmployees(ctx context.Context, repo repository.EmployeeRepo) {
	employees := []struct {
		username, password, displayName string
	}{
		{"jdoe", "changeme1", "John Doe"},
		{"asmith", "changeme2", "Anna Smith"},
	}

	for _, e := range employees {
		if existing, err := repo.GetByUsername(ctx, e.username); err == nil && existing != nil {
			log.Printf("Employee %s already exists, skipping", e.username)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(e.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("Failed to hash password:", err)
		}

		id, err := repo.Create(ctx, &model.Employee{
			Username:     e.username,
			PasswordHash: string(hash),
			DisplayName:  e.displayName,
			CreatedAt:    time.Now(),
		})
		if err != nil {
			log.Fatal("Failed to create employee:", err)
		}
		log.Printf("Created employee %s (%s)", e.username, id)
	}
}

func seedCustomers(ctx context.Context, repo repository.CustomerRepo) {
	customers := []model.Customer{
		{Name: "Acme Manufacturing", ContactEmail: "it@acme.example", CreatedAt: time.Now()},
		{Name: "Riverside Clinic", ContactEmail: "admin@riverside.example", CreatedAt: time.Now()},
	}

	existing, err := repo.List(ctx)
	if err != nil {
		log.Fatal("Failed to list customers:", err)
	}
	if len(existing) > 0 {
		log.Println("Customers already present, skipping")
		return
	}

	for _, c := range customers {
		customer := c
		id, err := repo.Create(ctx, &customer)
		if err != nil {
			log.Fatal("Failed to create customer:", err)
		}
		log.Printf("Created customer %s (%s)", c.Name, id)
	}
}

func seedCatalog(
	ctx context.Context,
	categoryRepo repository.CategoryRepo,
	questionRepo repository.QuestionRepo,
	inputRepo repository.InputRepo,
	optionRepo repository.OptionRepo,
	productRepo repository.ProductRepo,
) {
	if existing, err := categoryRepo.List(ctx); err == nil && len(existing) > 0 {
		log.Println("Catalog already present, skipping")
		return
	}

	edrID, err := productRepo.Create(ctx, &model.Product{
		Name:       "Managed EDR",
		ItemNumber: "SEC-EDR-01",
		UnitType:   "endpoint",
		CountType:  model.CountTypePC,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		log.Fatal("Failed to create product:", err)
	}

	backupID, err := productRepo.Create(ctx, &model.Product{
		Name:       "Cloud Backup",
		ItemNumber: "SEC-BCK-01",
		UnitType:   "server",
		CountType:  model.CountTypeServer,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		log.Fatal("Failed to create product:", err)
	}

	endpointCat, err := categoryRepo.Create(ctx, &model.Category{Name: "Endpoint Security", Order: 1})
	if err != nil {
		log.Fatal("Failed to create category:", err)
	}
	backupCat, err := categoryRepo.Create(ctx, &model.Category{Name: "Backup & Recovery", Order: 2})
	if err != nil {
		log.Fatal("Failed to create category:", err)
	}

	yes, err := inputRepo.GetOrCreate(ctx, "Yes", "")
	if err != nil {
		log.Fatal("Failed to create input:", err)
	}
	no, err := inputRepo.GetOrCreate(ctx, "No", "")
	if err != nil {
		log.Fatal("Failed to create input:", err)
	}
	other, err := inputRepo.GetOrCreate(ctx, "Other", "Answer does not fit the listed options")
	if err != nil {
		log.Fatal("Failed to create input:", err)
	}

	questions := []struct {
		q         model.Question
		preferred *model.StandardizedInput
	}{
		{
			q: model.Question{
				CategoryID:           endpointCat,
				Text:                 "Is antivirus or EDR deployed on all workstations?",
				Explanation:          "Unmanaged endpoints are the most common ransomware entry point.",
				Type:                 model.QuestionTypeYesNoOther,
				Weight:               10,
				RecommendedProductID: edrID,
				Order:                1,
			},
			preferred: yes,
		},
		{
			q: model.Question{
				CategoryID:      endpointCat,
				Text:            "How many workstations are in use?",
				Type:            model.QuestionTypeFreeInput,
				Weight:          0,
				Neutral:         true,
				IsCountQuestion: true,
				CountType:       model.CountTypePC,
				Order:           2,
			},
		},
		{
			q: model.Question{
				CategoryID:           backupCat,
				Text:                 "Are server backups taken daily and stored offsite?",
				Type:                 model.QuestionTypeYesNoOther,
				Weight:               8,
				RecommendedProductID: backupID,
				Order:                1,
			},
			preferred: yes,
		},
	}

	for _, entry := range questions {
		q := entry.q
		qID, err := questionRepo.Create(ctx, &q)
		if err != nil {
			log.Fatal("Failed to create question:", err)
		}

		if q.Type != model.QuestionTypeYesNoOther {
			continue
		}
		for _, input := range []*model.StandardizedInput{yes, no, other} {
			link := &model.QuestionOption{
				QuestionID: qID,
				InputID:    input.ID,
				Preferred:  entry.preferred != nil && input.ID == entry.preferred.ID,
			}
			if err := optionRepo.Upsert(ctx, link); err != nil {
				log.Fatal("Failed to link option:", err)
			}
		}
	}

	log.Println("Seeded catalog")
}
