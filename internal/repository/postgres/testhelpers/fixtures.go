package testhelpers

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/forest-management-gis/internal/domain"
)

// FixtureDocument - сырой документ для загрузки в коллекцию в обход репозиториев
type FixtureDocument struct {
	ID  string `db:"id"`
	Doc string `db:"doc"`
}

// LoadDocuments вставляет документы в коллекцию в указанном порядке
func LoadDocuments(ctx context.Context, db *sqlx.DB, coll domain.Collection, docs []FixtureDocument) error {
	if !coll.Valid() {
		return fmt.Errorf("unknown collection %q", coll)
	}

	query := fmt.Sprintf("INSERT INTO %s (id, doc) VALUES (:id, CAST(:doc AS jsonb))", coll)
	for _, d := range docs {
		if _, err := db.NamedExecContext(ctx, query, d); err != nil {
			return fmt.Errorf("load fixture %s into %s: %w", d.ID, coll, err)
		}
	}

	return nil
}

// CountRows возвращает число строк коллекции напрямую из таблицы
func CountRows(ctx context.Context, db *sqlx.DB, coll domain.Collection) (int, error) {
	var n int
	if err := db.GetContext(ctx, &n, fmt.Sprintf("SELECT COUNT(*) FROM %s", coll)); err != nil {
		return 0, fmt.Errorf("count %s: %w", coll, err)
	}
	return n, nil
}
