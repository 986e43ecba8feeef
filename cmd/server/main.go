package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cyberassess/internal/cache"
	"cyberassess/internal/config"
	"cyberassess/internal/repository"
	"cyberassess/internal/service"
	"cyberassess/internal/transport/rest"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env")
	}

	cfg := config.Load()
	ctx := context.Background()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		log.Fatal("Failed to create indexes:", err)
	}

	// Redis connection
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Repositories
	categoryRepo := repository.NewCategoryRepo(db)
	questionRepo := repository.NewQuestionRepo(db)
	inputRepo := repository.NewInputRepo(db)
	optionRepo := repository.NewOptionRepo(db)
	productRepo := repository.NewProductRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	employeeRepo := repository.NewEmployeeRepo(db)
	assessmentRepo := repository.NewAssessmentRepo(db)
	answerRepo := repository.NewAnswerRepo(db)

	// Caches
	catalogCache := cache.NewCatalogCache(rdb)
	reportCache := cache.NewReportCache(rdb)

	// Services
	authSvc := service.NewAuthService(employeeRepo)
	catalogSvc := service.NewCatalogService(categoryRepo, questionRepo, catalogCache)
	assessmentSvc := service.NewAssessmentService(assessmentRepo, customerRepo, questionRepo, answerRepo, optionRepo, inputRepo)
	answerSvc := service.NewAnswerService(answerRepo, assessmentRepo, questionRepo, inputRepo, reportCache)
	scoreSvc := service.NewScoreService(answerRepo, questionRepo, categoryRepo, optionRepo, inputRepo, productRepo, reportCache)
	exportSvc := service.NewExportService(assessmentRepo, customerRepo, scoreSvc)
	importSvc := service.NewImportService(categoryRepo, questionRepo, inputRepo, optionRepo, catalogCache, reportCache)

	container := &rest.Container{
		AuthService:       authSvc,
		AssessmentService: assessmentSvc,
		AnswerService:     answerSvc,
		ScoreService:      scoreSvc,
		ExportService:     exportSvc,
		CatalogService:    catalogSvc,
		ImportService:     importSvc,
		CustomerRepo:      customerRepo,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
