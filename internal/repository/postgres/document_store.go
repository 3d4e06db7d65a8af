package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/domain"
	"github.com/forest-management-gis/internal/pkg/metrics"
)

var ErrUnknownCollection = errors.New("unknown collection")

// Document - строка коллекции: нативный ключ и тело документа в JSON
type Document struct {
	Key  int64
	Body []byte
}

// GroupCount - результат группировки по полю документа
type GroupCount struct {
	Value string
	Count int64
}

// DocumentStore - документное хранилище поверх JSONB таблиц, по одной на коллекцию.
// Каждая таблица: _id BIGSERIAL, id TEXT UNIQUE, doc JSONB.
type DocumentStore struct {
	db     Querier
	logger *zap.Logger
}

func NewDocumentStore(db Querier, logger *zap.Logger) *DocumentStore {
	return &DocumentStore{db: db, logger: logger}
}

// Insert сохраняет документ и возвращает нативный ключ
func (s *DocumentStore) Insert(ctx context.Context, coll domain.Collection, id string, doc any) (key int64, err error) {
	defer observe("insert", coll, time.Now(), &err)

	table, err := tableName(coll)
	if err != nil {
		return 0, err
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return 0, fmt.Errorf("marshal document: %w", err)
	}

	query := fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES ($1, $2::jsonb) RETURNING _id`, table)
	if err = s.db.QueryRow(ctx, query, id, string(body)).Scan(&key); err != nil {
		s.logger.Error("failed to insert document",
			zap.String("collection", coll.String()),
			zap.String("id", id),
			zap.Error(err))
		return 0, fmt.Errorf("insert into %s: %w", table, err)
	}

	return key, nil
}

// FindOne возвращает документ по id или domain.ErrNotFound
func (s *DocumentStore) FindOne(ctx context.Context, coll domain.Collection, id string) (doc *Document, err error) {
	defer observe("find_one", coll, time.Now(), &err)

	table, err := tableName(coll)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT _id, doc FROM %s WHERE id = $1`, table)
	var d Document
	if err = s.db.QueryRow(ctx, query, id).Scan(&d.Key, &d.Body); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s %s: %w", coll, id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("select from %s: %w", table, err)
	}

	return &d, nil
}

// Find возвращает документы в порядке вставки. Непустой filter - условие равенства по полям.
func (s *DocumentStore) Find(ctx context.Context, coll domain.Collection, filter domain.Fields) (docs []Document, err error) {
	defer observe("find", coll, time.Now(), &err)

	table, err := tableName(coll)
	if err != nil {
		return nil, err
	}

	where, args, err := containment(filter)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT _id, doc FROM %s%s ORDER BY _id`, table, where)
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select from %s: %w", table, err)
	}
	defer rows.Close()

	docs = make([]Document, 0)
	for rows.Next() {
		var d Document
		if err = rows.Scan(&d.Key, &d.Body); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", table, err)
		}
		docs = append(docs, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", table, err)
	}

	return docs, nil
}

// Patch сливает fields в документ. Возвращает false, если документ не найден.
func (s *DocumentStore) Patch(ctx context.Context, coll domain.Collection, id string, fields domain.Fields) (matched bool, err error) {
	defer observe("patch", coll, time.Now(), &err)

	table, err := tableName(coll)
	if err != nil {
		return false, err
	}

	body, err := json.Marshal(fields)
	if err != nil {
		return false, fmt.Errorf("marshal fields: %w", err)
	}

	query := fmt.Sprintf(`UPDATE %s SET doc = doc || $2::jsonb WHERE id = $1`, table)
	tag, err := s.db.Exec(ctx, query, id, string(body))
	if err != nil {
		return false, fmt.Errorf("update %s: %w", table, err)
	}

	return tag.RowsAffected() > 0, nil
}

// Push добавляет value в конец массива field. Отсутствующий массив создаётся.
func (s *DocumentStore) Push(ctx context.Context, coll domain.Collection, id, field string, value any) (matched bool, err error) {
	defer observe("push", coll, time.Now(), &err)

	table, err := tableName(coll)
	if err != nil {
		return false, err
	}

	body, err := json.Marshal(value)
	if err != nil {
		return false, fmt.Errorf("marshal value: %w", err)
	}

	query := fmt.Sprintf(`UPDATE %s SET doc = jsonb_set(doc, ARRAY[$2::text], COALESCE(doc->$2::text, '[]'::jsonb) || jsonb_build_array($3::jsonb)) WHERE id = $1`, table)
	tag, err := s.db.Exec(ctx, query, id, field, string(body))
	if err != nil {
		return false, fmt.Errorf("push into %s.%s: %w", table, field, err)
	}

	return tag.RowsAffected() > 0, nil
}

// Delete удаляет документ и возвращает его последнее состояние или domain.ErrNotFound
func (s *DocumentStore) Delete(ctx context.Context, coll domain.Collection, id string) (doc *Document, err error) {
	defer observe("delete", coll, time.Now(), &err)

	table, err := tableName(coll)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 RETURNING _id, doc`, table)
	var d Document
	if err = s.db.QueryRow(ctx, query, id).Scan(&d.Key, &d.Body); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s %s: %w", coll, id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("delete from %s: %w", table, err)
	}

	return &d, nil
}

// Count считает документы, удовлетворяющие filter
func (s *DocumentStore) Count(ctx context.Context, coll domain.Collection, filter domain.Fields) (count int64, err error) {
	defer observe("count", coll, time.Now(), &err)

	table, err := tableName(coll)
	if err != nil {
		return 0, err
	}

	where, args, err := containment(filter)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s%s`, table, where)
	if err = s.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}

	return count, nil
}

// GroupCount группирует документы по строковому полю, по убыванию количества.
// Отсутствующее поле попадает в группу с пустым значением.
func (s *DocumentStore) GroupCount(ctx context.Context, coll domain.Collection, field string) (groups []GroupCount, err error) {
	defer observe("group_count", coll, time.Now(), &err)

	table, err := tableName(coll)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT COALESCE(doc->>$1, '') AS value, COUNT(*) AS count FROM %s GROUP BY 1 ORDER BY 2 DESC`, table)
	rows, err := s.db.Query(ctx, query, field)
	if err != nil {
		return nil, fmt.Errorf("group %s by %s: %w", table, field, err)
	}
	defer rows.Close()

	groups = make([]GroupCount, 0)
	for rows.Next() {
		var g GroupCount
		if err = rows.Scan(&g.Value, &g.Count); err != nil {
			return nil, fmt.Errorf("scan %s group: %w", table, err)
		}
		groups = append(groups, g)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s groups: %w", table, err)
	}

	return groups, nil
}

func tableName(coll domain.Collection) (string, error) {
	if !coll.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCollection, coll)
	}
	return coll.String(), nil
}

func containment(filter domain.Fields) (string, []any, error) {
	if len(filter) == 0 {
		return "", nil, nil
	}
	body, err := json.Marshal(filter)
	if err != nil {
		return "", nil, fmt.Errorf("marshal filter: %w", err)
	}
	return ` WHERE doc @> $1::jsonb`, []any{string(body)}, nil
}

func observe(op string, coll domain.Collection, start time.Time, err *error) {
	var opErr error
	if err != nil && !errors.Is(*err, domain.ErrNotFound) {
		opErr = *err
	}
	metrics.ObserveStoreOperation(op, coll.String(), start, opErr)
}

// decode разбирает тело документа в T и проставляет нативный ключ строкой
func decode[T any](d Document, storeKey func(*T) *string) (*T, error) {
	v := new(T)
	if err := json.Unmarshal(d.Body, v); err != nil {
		return nil, fmt.Errorf("decode document %d: %w", d.Key, err)
	}
	*storeKey(v) = formatKey(d.Key)
	return v, nil
}

func decodeAll[T any](docs []Document, storeKey func(*T) *string) ([]*T, error) {
	out := make([]*T, 0, len(docs))
	for _, d := range docs {
		v, err := decode(d, storeKey)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func formatKey(key int64) string {
	return strconv.FormatInt(key, 10)
}
