package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"tilepath/server/handlers"
	"tilepath/server/models"
	"tilepath/server/persistence"
	"tilepath/server/services"
)

func main() {
	// Initialize preset storage
	storeType := os.Getenv("PRESET_STORE")
	var db persistence.Storage
	var err error

	if storeType == "postgres" {
		dbConnectionString := os.Getenv("DATABASE_URL")
		if dbConnectionString == "" {
			dbConnectionString = "host=localhost user=tilepath password=tilepath dbname=tilepath sslmode=disable"
		}
		db, err = persistence.NewPostgresStore(dbConnectionString)
		log.Println("Using PostgreSQL preset storage")
	} else {
		// Default to a local presets file
		presetFile := os.Getenv("PRESET_FILE")
		if presetFile == "" {
			presetFile = "presets.yaml"
		}
		db, err = persistence.NewFileStore(presetFile)
		log.Println("Using file preset storage")
	}

	if err != nil {
		log.Fatalf("Failed to initialize preset storage: %v", err)
	}
	defer db.Close()

	levelService := services.NewLevelService(db, models.DefaultLevelConfig())

	seed := services.NewSeed()
	if raw := os.Getenv("LEVEL_SEED"); raw != "" {
		seed, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Fatalf("Invalid LEVEL_SEED %q: %v", raw, err)
		}
	}

	// Generate the first level before accepting viewers
	if preset := os.Getenv("LEVEL_PRESET"); preset != "" {
		err = levelService.UsePreset(preset, seed)
	} else {
		err = levelService.Regenerate(seed)
	}
	if err != nil {
		log.Fatalf("Failed to generate initial level: %v", err)
	}
	cfg := levelService.Config()
	log.Printf("Generated initial %dx%d level with seed %d", cfg.Width, cfg.Height, seed)

	clientManager := handlers.NewClientManager()
	http.HandleFunc("/ws", handlers.NewWebSocketHandler(levelService, clientManager))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, nil))
}
