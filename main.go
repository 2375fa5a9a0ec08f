package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/demowin23/vilaw-be/admin"
	"github.com/demowin23/vilaw-be/category"
	"github.com/demowin23/vilaw-be/chat"
	"github.com/demowin23/vilaw-be/config"
	"github.com/demowin23/vilaw-be/cron"
	"github.com/demowin23/vilaw-be/field"
	"github.com/demowin23/vilaw-be/knowledge"
	"github.com/demowin23/vilaw-be/legaldoc"
	"github.com/demowin23/vilaw-be/migrate"
	"github.com/demowin23/vilaw-be/news"
	"github.com/demowin23/vilaw-be/seeder"
	"github.com/demowin23/vilaw-be/sitecontent"
	"github.com/demowin23/vilaw-be/stats"
	"github.com/demowin23/vilaw-be/upload"
	"github.com/demowin23/vilaw-be/user"
	"github.com/demowin23/vilaw-be/video"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables.")
	}

	args := os.Args
	db := config.InitDB()
	defer db.Close()

	if len(args) > 1 && args[1] == "--migrate" {
		migrate.RunMigrations(db)
		return
	}

	if len(args) > 1 && args[1] == "--seed" {
		seeder.RunSeeder(db)
		return
	}

	redisClient := config.InitRedis()
	defer redisClient.Close()

	if err := upload.EnsureDir(); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("ALLOWED_ORIGINS")},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Static("/uploads", upload.Dir())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	user.RegisterRoutes(api, db)
	admin.RegisterRoutes(api, db)
	category.RegisterRoutes(api, db)
	field.RegisterRoutes(api, db)
	knowledge.RegisterRoutes(api, db)
	news.RegisterRoutes(api, db)
	video.RegisterRoutes(api, db)
	chat.RegisterRoutes(api, db)
	sitecontent.RegisterRoutes(api, db)
	stats.RegisterRoutes(api, db, redisClient)
	upload.RegisterRoutes(api, db)
	documentService := legaldoc.RegisterRoutes(api, db, redisClient)

	scheduler := cron.NewScheduler(documentService, user.NewOTPService(db))
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8000"
	}

	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: r,
	}

	go func() {
		log.Printf("Server running at http://0.0.0.0:%s\n", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited successfully")
}
