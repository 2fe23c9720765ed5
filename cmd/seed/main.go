// Command seed loads the bundled cohort and student fixtures into the
// database. Records get fresh ids on every run, so wipe the tables first
// when re-seeding.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"cohort-tools-backend/internal/models"
	"cohort-tools-backend/internal/storage"
)

func main() {
	dir := "seed"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	db, err := sqlx.Connect("postgres", buildDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	store := storage.New(db)
	ctx := context.Background()

	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	cohorts, err := readDocuments(filepath.Join(dir, "cohorts.json"))
	if err != nil {
		log.Fatalf("Failed to read cohorts fixture: %v", err)
	}
	for _, attrs := range cohorts {
		cohort, err := store.CreateCohort(ctx, attrs)
		if err != nil {
			log.Fatalf("Failed to insert cohort: %v", err)
		}
		log.Printf("Inserted cohort %s", cohort.ID)
	}

	students, err := readDocuments(filepath.Join(dir, "students.json"))
	if err != nil {
		log.Fatalf("Failed to read students fixture: %v", err)
	}
	for _, attrs := range students {
		student, err := store.CreateStudent(ctx, attrs)
		if err != nil {
			log.Fatalf("Failed to insert student: %v", err)
		}
		log.Printf("Inserted student %s", student.ID)
	}

	log.Printf("Seeded %d cohorts and %d students", len(cohorts), len(students))
}

func readDocuments(path string) ([]models.Attributes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var docs []models.Attributes
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func buildDSN() string {
	return "host=" + getEnv("DB_HOST", "localhost") +
		" user=" + getEnv("DB_USER", "cohort_user") +
		" password=" + getEnv("DB_PASSWORD", "cohort_pass") +
		" dbname=" + getEnv("DB_NAME", "cohort_tools") +
		" sslmode=disable"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
