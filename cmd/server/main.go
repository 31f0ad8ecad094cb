package main

import (
	"MaskingBackend/config"
	"MaskingBackend/internal/repository/filesystem"
	"MaskingBackend/internal/repository/sqldb"
	"MaskingBackend/internal/router"
	"MaskingBackend/internal/service"
	"MaskingBackend/scripts"
	"net/http"
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	catalog := filesystem.NewCatalog(cfg.RootDataPath)

	db, err := config.NewConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to open journal database: %v", err)
	}

	var journal service.AnnotationStore
	if db != nil {
		defer func() {
			if err := db.Close(); err != nil {
				log.Println("Error closing the database:", err)
			}
		}()

		repo := sqldb.NewAnnotationRepository(db)
		if err := repo.EnsureSchema(); err != nil {
			log.Fatalf("Failed to create journal schema: %v", err)
		}

		// Masks may have been added or removed by hand while the server was down.
		removed, added, err := scripts.SyncJournal(repo, catalog)
		if err != nil {
			log.Printf("Journal sync failed: %v", err)
		} else {
			log.Printf("Journal synced: %d removed, %d added", removed, added)
		}
		journal = repo
	}

	s := service.NewMaskingService(catalog, journal, cfg.ThumbSize)

	r, err := router.NewRouter(s, cfg)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	log.Printf("Serving %s on :%s", cfg.RootDataPath, cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
