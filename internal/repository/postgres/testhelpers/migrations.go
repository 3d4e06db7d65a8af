package testhelpers

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
)

// ApplyMigrations applies all .up.sql migration files from the specified directory
// and returns the names of the applied files
func ApplyMigrations(db *sqlx.DB, migrationsPath string) ([]string, error) {
	files, err := os.ReadDir(migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	var upFiles []string
	for _, f := range files {
		if strings.HasSuffix(f.Name(), ".up.sql") {
			upFiles = append(upFiles, f.Name())
		}
	}
	sort.Strings(upFiles)

	applied := make([]string, 0, len(upFiles))
	for _, file := range upFiles {
		content, err := os.ReadFile(filepath.Join(migrationsPath, file))
		if err != nil {
			return applied, fmt.Errorf("read migration %s: %w", file, err)
		}

		// миграции идемпотентны (IF NOT EXISTS), повторный прогон безопасен
		if _, err := db.Exec(string(content)); err != nil {
			return applied, fmt.Errorf("apply migration %s: %w", file, err)
		}
		applied = append(applied, file)
	}

	return applied, nil
}
