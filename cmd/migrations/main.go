package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"

	_ "github.com/lib/pq"

	"github.com/vncsmyrnk/awards/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/awards/internal/config"
)

var basePath = filepath.Join(".", "internal", "adapters", "repository", "postgres", "migrations")

// Applies every up migration, or only the one whose file name ends with the
// given name.
func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if flag.NArg() == 0 {
		if err := postgres.ApplyMigrations(db, basePath); err != nil {
			log.Fatal(err)
		}
		fmt.Println("All migrations executed successfully.")
		return
	}

	fileContent, err := migrationFileContent(basePath, flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	if _, err := db.Exec(string(fileContent)); err != nil {
		log.Fatalf("Failed to execute SQL file: %v", err)
	}

	fmt.Println("Migration file executed successfully.")
}

func migrationFileContent(basePath string, migrationName string) ([]byte, error) {
	filePath, err := migrationFilePath(basePath, migrationName)
	if err != nil {
		return nil, err
	}

	return os.ReadFile(filepath.Join(basePath, filePath))
}

func migrationFilePath(basePath string, migrationName string) (string, error) {
	regex, err := regexp.Compile(fmt.Sprintf(`^.*%s\.sql$`, regexp.QuoteMeta(migrationName)))
	if err != nil {
		return "", fmt.Errorf("invalid pattern: %w", err)
	}

	files, err := os.ReadDir(basePath)
	if err != nil {
		return "", err
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		if regex.MatchString(f.Name()) {
			return f.Name(), nil
		}
	}

	return "", fmt.Errorf("migration file %q not found", migrationName)
}
