package postgres_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/domain"
	"github.com/forest-management-gis/internal/repository/postgres"
)

// jsonWithout совпадает с JSON-аргументом, в котором нет указанного ключа
type jsonWithout string

func (k jsonWithout) Match(v interface{}) bool {
	s, ok := v.(string)
	return ok && !strings.Contains(s, `"`+string(k)+`"`)
}

func TestTreeRepository_CreateSetsStoreKey(t *testing.T) {
	store, mock := newMockStore(t)
	repo := postgres.NewTreeRepository(store, zap.NewNop())

	mock.ExpectQuery(`INSERT INTO trees`).
		WithArgs("tree-1", jsonWithout("_id")).
		WillReturnRows(pgxmock.NewRows([]string{"_id"}).AddRow(int64(17)))

	tree := &domain.Tree{ID: "tree-1", Species: "Cedar", Photos: []domain.Photo{}}
	require.NoError(t, repo.Create(context.Background(), tree))
	assert.Equal(t, "17", tree.StoreKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTreeRepository_GetByID(t *testing.T) {
	store, mock := newMockStore(t)
	repo := postgres.NewTreeRepository(store, zap.NewNop())
	ctx := context.Background()

	body := `{"id":"tree-1","species":"スギ","health":"healthy","lat":35.1,"lng":139.2,
		"diameter":30,"height":12.5,"notes":"","area_id":"area-1","photos":[],
		"last_check":"2026-01-02T03:04:05Z","created_at":"2026-01-02T03:04:05Z","updated_at":"2026-01-02T03:04:05Z"}`
	mock.ExpectQuery(`SELECT _id, doc FROM trees WHERE id`).
		WithArgs("tree-1").
		WillReturnRows(pgxmock.NewRows([]string{"_id", "doc"}).AddRow(int64(3), []byte(body)))
	mock.ExpectQuery(`SELECT _id, doc FROM trees WHERE id`).
		WithArgs("nope").
		WillReturnError(pgx.ErrNoRows)

	tree, err := repo.GetByID(ctx, "tree-1")
	require.NoError(t, err)
	assert.Equal(t, "3", tree.StoreKey)
	assert.Equal(t, "スギ", tree.Species)
	require.NotNil(t, tree.AreaID)
	assert.Equal(t, "area-1", *tree.AreaID)
	assert.Equal(t, 12.5, tree.Height)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), tree.CreatedAt.UTC())

	_, err = repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTreeRepository_List(t *testing.T) {
	store, mock := newMockStore(t)
	repo := postgres.NewTreeRepository(store, zap.NewNop())

	mock.ExpectQuery(`SELECT _id, doc FROM trees WHERE doc @>`).
		WithArgs(`{"health":"warning"}`).
		WillReturnRows(pgxmock.NewRows([]string{"_id", "doc"}).
			AddRow(int64(1), []byte(`{"id":"t1","health":"warning","photos":[]}`)).
			AddRow(int64(4), []byte(`{"id":"t2","health":"warning","photos":[]}`)))

	trees, err := repo.List(context.Background(), domain.TreeFilter{Health: "warning"})
	require.NoError(t, err)
	require.Len(t, trees, 2)
	assert.Equal(t, "1", trees[0].StoreKey)
	assert.Equal(t, "t2", trees[1].ID)
	assert.Equal(t, "4", trees[1].StoreKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTreeRepository_UpdateNotFound(t *testing.T) {
	store, mock := newMockStore(t)
	repo := postgres.NewTreeRepository(store, zap.NewNop())

	mock.ExpectExec(`UPDATE trees SET doc = doc`).
		WithArgs("missing", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), "missing", domain.Fields{"notes": "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTreeRepository_DeleteReturnsPhotos(t *testing.T) {
	store, mock := newMockStore(t)
	repo := postgres.NewTreeRepository(store, zap.NewNop())

	mock.ExpectQuery(`DELETE FROM trees WHERE id`).
		WithArgs("tree-1").
		WillReturnRows(pgxmock.NewRows([]string{"_id", "doc"}).
			AddRow(int64(9), []byte(`{"id":"tree-1","photos":[{"id":"p1","filename":"tree-1_x.jpg","file_path":"uploads/tree-1_x.jpg","size":3}]}`)))

	tree, err := repo.Delete(context.Background(), "tree-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"uploads/tree-1_x.jpg"}, tree.PhotoPaths())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTreeRepository_AddPhotoAndCount(t *testing.T) {
	store, mock := newMockStore(t)
	repo := postgres.NewTreeRepository(store, zap.NewNop())
	ctx := context.Background()

	mock.ExpectExec(`jsonb_set`).
		WithArgs("tree-1", "photos", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`jsonb_set`).
		WithArgs("gone", "photos", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM trees`).
		WithArgs(`{"area_id":"area-1"}`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))

	require.NoError(t, repo.AddPhoto(ctx, "tree-1", &domain.Photo{ID: "p1"}))
	assert.ErrorIs(t, repo.AddPhoto(ctx, "gone", &domain.Photo{ID: "p2"}), domain.ErrNotFound)

	count, err := repo.CountByArea(ctx, "area-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkAreaRepository_TreeCountNeverPersisted(t *testing.T) {
	store, mock := newMockStore(t)
	repo := postgres.NewWorkAreaRepository(store, zap.NewNop())
	ctx := context.Background()

	mock.ExpectQuery(`INSERT INTO work_areas`).
		WithArgs("area-1", jsonWithout("tree_count")).
		WillReturnRows(pgxmock.NewRows([]string{"_id"}).AddRow(int64(1)))
	mock.ExpectExec(`UPDATE work_areas SET doc = doc`).
		WithArgs("area-1", jsonWithout("tree_count")).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	area := &domain.WorkArea{ID: "area-1", Name: "North", TreeCount: 5, Boundary: [][]float64{{35, 139}}}
	require.NoError(t, repo.Create(ctx, area))
	assert.Equal(t, "1", area.StoreKey)

	require.NoError(t, repo.Update(ctx, "area-1", domain.Fields{"name": "South", "tree_count": 9}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkAreaRepository_DeleteNotFound(t *testing.T) {
	store, mock := newMockStore(t)
	repo := postgres.NewWorkAreaRepository(store, zap.NewNop())

	mock.ExpectQuery(`DELETE FROM work_areas`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	assert.ErrorIs(t, repo.Delete(context.Background(), "missing"), domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGPSTrackRepository_ListByType(t *testing.T) {
	store, mock := newMockStore(t)
	repo := postgres.NewGPSTrackRepository(store, zap.NewNop())

	mock.ExpectQuery(`SELECT _id, doc FROM gps_tracks WHERE doc @>`).
		WithArgs(`{"track_type":"point"}`).
		WillReturnRows(pgxmock.NewRows([]string{"_id", "doc"}).
			AddRow(int64(2), []byte(`{"id":"g1","track_type":"point","points":[{"lat":1,"lng":2}],"distance":0}`)))

	tracks, err := repo.List(context.Background(), domain.GPSTrackFilter{TrackType: "point"})
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	lat, lng, ok := tracks[0].Points[0].LatLng()
	assert.True(t, ok)
	assert.Equal(t, 1.0, lat)
	assert.Equal(t, 2.0, lng)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVectorLayerAndMeasurementRepositories(t *testing.T) {
	store, mock := newMockStore(t)
	layers := postgres.NewVectorLayerRepository(store, zap.NewNop())
	measurements := postgres.NewMeasurementRepository(store, zap.NewNop())
	ctx := context.Background()

	mock.ExpectQuery(`INSERT INTO vector_layers`).
		WithArgs("l1", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"_id"}).AddRow(int64(11)))
	mock.ExpectQuery(`SELECT _id, doc FROM measurements WHERE id`).
		WithArgs("m1").
		WillReturnRows(pgxmock.NewRows([]string{"_id", "doc"}).
			AddRow(int64(8), []byte(`{"id":"m1","start_point":{"lat":1,"lng":2},"end_point":{"lat":3,"lng":4},"distance":12.5,"measurement_type":"distance"}`)))
	mock.ExpectQuery(`DELETE FROM measurements`).
		WithArgs("m1").
		WillReturnRows(pgxmock.NewRows([]string{"_id", "doc"}).AddRow(int64(8), []byte(`{"id":"m1"}`)))

	layer := &domain.VectorLayer{ID: "l1", Name: "roads", Visible: true}
	require.NoError(t, layers.Create(ctx, layer))
	assert.Equal(t, "11", layer.StoreKey)

	m, err := measurements.GetByID(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "8", m.StoreKey)
	assert.Equal(t, 3.0, m.EndPoint["lat"])
	assert.Equal(t, 12.5, m.Distance)

	require.NoError(t, measurements.Delete(ctx, "m1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_Summary(t *testing.T) {
	store, mock := newMockStore(t)
	repo := postgres.NewAnalyticsRepository(store, zap.NewNop())

	expectCount := func(table string, value int64) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM ` + table + `$`).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(value))
	}
	expectHealth := func(health string, value int64) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM trees WHERE doc @>`).
			WithArgs(`{"health":"` + health + `"}`).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(value))
	}

	expectCount("trees", 6)
	expectHealth("healthy", 3)
	expectHealth("warning", 2)
	expectHealth("critical", 1)
	expectCount("work_areas", 2)
	expectCount("gps_tracks", 4)
	expectCount("measurements", 5)

	summary, err := repo.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &domain.AnalyticsSummary{
		TotalTrees:        6,
		HealthyTrees:      3,
		WarningTrees:      2,
		CriticalTrees:     1,
		TotalAreas:        2,
		TotalTracks:       4,
		TotalMeasurements: 5,
	}, summary)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_SpeciesDistribution(t *testing.T) {
	store, mock := newMockStore(t)
	repo := postgres.NewAnalyticsRepository(store, zap.NewNop())

	mock.ExpectQuery(`FROM trees GROUP BY 1`).
		WithArgs("species").
		WillReturnRows(pgxmock.NewRows([]string{"value", "count"}).
			AddRow("A", int64(2)).
			AddRow("B", int64(1)))

	dist, err := repo.SpeciesDistribution(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.SpeciesCount{{Species: "A", Count: 2}, {Species: "B", Count: 1}}, dist)
	assert.NoError(t, mock.ExpectationsWereMet())
}
