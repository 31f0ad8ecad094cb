package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	RootDataPath string
	WebDir       string
	ThumbSize    uint
	FrontURL     string

	JournalDriver string
	JournalPath   string
	PgHost        string
	PgPort        string
	PgUser        string
	PgPass        string
	PgDBName      string
	PgSSLMode     string
}

// Load reads .env (optional), then the environment, then command line flags.
// Flags win over the environment.
func Load(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8000"),
		RootDataPath:  getEnv("ROOT_DATA_PATH", "./masking_data"),
		WebDir:        getEnv("WEB_DIR", "./web"),
		FrontURL:      os.Getenv("FRONT_URL"),
		JournalDriver: os.Getenv("JOURNAL_DRIVER"),
		JournalPath:   getEnv("JOURNAL_PATH", "./masking_journal.db"),
		PgHost:        os.Getenv("PG_HOST"),
		PgPort:        getEnv("PG_PORT", "5432"),
		PgUser:        os.Getenv("PG_USER"),
		PgPass:        os.Getenv("PG_PASS"),
		PgDBName:      os.Getenv("PG_DBNAME"),
		PgSSLMode:     getEnv("PG_SSLMODE", "disable"),
	}

	thumbSize, err := strconv.ParseUint(getEnv("THUMB_SIZE", "128"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid THUMB_SIZE: %w", err)
	}
	cfg.ThumbSize = uint(thumbSize)

	fset := flag.NewFlagSet("masking", flag.ContinueOnError)
	fset.StringVar(&cfg.RootDataPath, "root_data_path", cfg.RootDataPath,
		"Path to the root data folder. Must be the parent folder containing category folders.")
	fset.StringVar(&cfg.Port, "port", cfg.Port, "HTTP port to listen on")
	fset.StringVar(&cfg.WebDir, "web_dir", cfg.WebDir, "Folder holding index.html and static/")
	fset.StringVar(&cfg.JournalDriver, "journal", cfg.JournalDriver, "Mask journal driver: postgres, sqlite3 or empty to disable")
	if err := fset.Parse(args); err != nil {
		return nil, err
	}

	switch cfg.JournalDriver {
	case "", DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unknown journal driver %q", cfg.JournalDriver)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
