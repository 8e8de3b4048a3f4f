package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lucasmoraes-dev/gamestore-api/auth"
	"github.com/lucasmoraes-dev/gamestore-api/config"
	"github.com/lucasmoraes-dev/gamestore-api/migrations"
	"github.com/lucasmoraes-dev/gamestore-api/models"
	"github.com/lucasmoraes-dev/gamestore-api/routes"
)

func main() {
	log.Println("Starting GameStore API...")

	_ = godotenv.Load()
	cfg := config.Load()
	auth.Init(cfg.JWTSecret)

	db := initDatabase(cfg)

	if err := migrations.Run(db); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}
	seedGames(db, cfg)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Static frontend, when present next to the binary.
	if _, err := os.Stat("frontend"); err == nil {
		r.Static("/frontend", "frontend")
		r.StaticFile("/", "frontend/index.html")
	}

	routes.SetupRoutes(r, db, cfg)

	// Daily database backup at 2 AM, keep 4 days.
	go startDailyBackupAtFixedTime(cfg.DBPath, cfg.BackupDir, 4*24*time.Hour, 2, 0)

	// Purge expired sessions once a day.
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := db.Where("expires_at < ?", time.Now()).
				Delete(&models.Session{}).Error; err != nil {
				log.Printf("session cleanup failed: %v", err)
			}
		}
	}()

	log.Printf("Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// initDatabase opens the SQLite store with foreign keys enabled.
func initDatabase(cfg config.Config) *gorm.DB {
	dsn := cfg.DBPath + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect DB: %v", err)
	}
	return db
}

// seedGames loads an initial catalog on first boot, in dev only. A fresh
// production store starts with an empty catalog until an admin adds games.
func seedGames(db *gorm.DB, cfg config.Config) {
	if cfg.Env != "dev" {
		return
	}
	var count int64
	if err := db.Model(&models.Game{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	games := []models.Game{
		{Name: "Cyberpunk 2077", Description: "RPG futurista em Night City.", Price: 149.90, Genre: "RPG", Platform: "PC, PlayStation 5, Xbox Series X", AgeRating: "18"},
		{Name: "EA Sports FC 24", Description: "Futebol com times e jogadores reais.", Price: 209.90, Genre: "Esportes", Platform: "PC, PlayStation 5, Xbox Series X, Nintendo Switch", AgeRating: "3"},
		{Name: "God of War: Ragnarok", Description: "A jornada nórdica de Kratos.", Price: 249.90, Genre: "Ação-Aventura", Platform: "PlayStation 5", AgeRating: "18"},
		{Name: "The Legend of Zelda: Tears of the Kingdom", Description: "Explore Hyrule com novos poderes.", Price: 299.90, Genre: "Ação-Aventura", Platform: "Nintendo Switch", AgeRating: "12"},
		{Name: "Elden Ring", Description: "Action RPG nas Terras Intermédias.", Price: 229.90, Genre: "RPG", Platform: "PC, PlayStation 5, Xbox Series X", AgeRating: "16"},
		{Name: "Baldur's Gate 3", Description: "RPG épico baseado em D&D.", Price: 239.90, Genre: "RPG", Platform: "PC, PlayStation 5, Xbox Series X", AgeRating: "18"},
	}
	for _, g := range games {
		if err := db.Create(&g).Error; err != nil {
			log.Printf("failed to seed %s: %v", g.Name, err)
		}
	}
	log.Printf("seeded %d games", len(games))
}

// startDailyBackupAtFixedTime copies the database file daily at a fixed hour
// and prunes backups older than the retention window.
func startDailyBackupAtFixedTime(dbPath, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Printf("next database backup scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(next.Sub(now))

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		dest := filepath.Join(backupDir, timestamp+"_"+filepath.Base(dbPath))

		if err := copyFile(dbPath, dest); err != nil {
			log.Printf("failed to back up database: %v", err)
		} else {
			log.Printf("database backed up to %s", dest)
		}

		cleanupOldBackups(backupDir, retention)
	}
}

func copyFile(src, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// cleanupOldBackups removes backup files older than the retention duration.
func cleanupOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.Printf("failed to read backup directory: %v", err)
		return
	}

	cutoff := time.Now().Add(-retention)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err != nil {
				log.Printf("failed to remove old backup %s: %v", path, err)
			} else {
				log.Printf("removed old backup: %s", path)
			}
		}
	}
}
