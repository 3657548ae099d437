package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brandforge/demokit-backend/api/routes"
	"github.com/brandforge/demokit-backend/internal/config"
	"github.com/brandforge/demokit-backend/internal/handlers"
	"github.com/brandforge/demokit-backend/internal/repositories"
	mongorepo "github.com/brandforge/demokit-backend/internal/repositories/mongodb"
	"github.com/brandforge/demokit-backend/internal/services"
	mongodb "github.com/brandforge/demokit-backend/pkg/mongodb"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to MongoDB using the pkg helper
	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// The object store is optional; without a bucket name the brand listing
	// degrades to empty results.
	var bucket *gridfs.Bucket
	if cfg.Storage.Bucket != "" {
		bucket, err = mongoClient.Bucket(cfg.MongoDB.Database, cfg.Storage.Bucket)
		if err != nil {
			log.Fatalf("Failed to open storage bucket: %v", err)
		}
	}

	// Initialize repositories
	var docRepo repositories.DocumentRepository = mongorepo.NewDocumentRepository(db)
	var objRepo repositories.ObjectRepository = mongorepo.NewObjectRepository(bucket, cfg.Storage.PublicBaseURL)

	// Initialize services
	documentService := services.NewDocumentService(docRepo, cfg.Document.BootstrapPath, cfg.Document.AutoSeed)
	brandService := services.NewBrandService(docRepo, objRepo, cfg.Storage.Prefix)

	// Initialize handlers
	handlerDeps := routes.HandlerDependencies{
		DocumentHandler: handlers.NewDocumentHandler(documentService),
		BrandHandler:    handlers.NewBrandHandler(brandService),
	}

	// Setup router
	router := routes.SetupRouter(cfg, handlerDeps)

	// Start the server
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	// Run server in a goroutine so that it doesn't block
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
