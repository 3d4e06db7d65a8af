package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/forest-management-gis/internal/domain"
	"github.com/forest-management-gis/internal/domain/repository"
	"github.com/forest-management-gis/internal/repository/postgres"
	"github.com/forest-management-gis/internal/repository/postgres/testhelpers"
)

// DocumentStoreIntegrationSuite прогоняет репозитории против настоящего PostgreSQL
type DocumentStoreIntegrationSuite struct {
	suite.Suite
	testDB    *testhelpers.TestDB
	store     *postgres.DocumentStore
	trees     repository.TreeRepository
	areas     repository.WorkAreaRepository
	analytics repository.AnalyticsRepository
	ctx       context.Context
}

func (s *DocumentStoreIntegrationSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	_, err := testhelpers.ApplyMigrations(s.testDB.DB, "../../../migrations")
	s.Require().NoError(err, "Failed to apply migrations")

	s.store = testhelpers.NewStoreForTest(s.testDB.Pool, s.testDB.Logger)
	s.trees = postgres.NewTreeRepository(s.store, s.testDB.Logger)
	s.areas = postgres.NewWorkAreaRepository(s.store, s.testDB.Logger)
	s.analytics = postgres.NewAnalyticsRepository(s.store, s.testDB.Logger)
}

func (s *DocumentStoreIntegrationSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *DocumentStoreIntegrationSuite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NoError(s.testDB.Cleanup(s.ctx))
}

func (s *DocumentStoreIntegrationSuite) newTree(id, species, health string, areaID *string) *domain.Tree {
	now := time.Now().UTC()
	tree := &domain.Tree{
		ID:        id,
		Species:   species,
		Health:    health,
		Lat:       35.68,
		Lng:       139.76,
		AreaID:    areaID,
		Photos:    []domain.Photo{},
		LastCheck: now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.Require().NoError(s.trees.Create(s.ctx, tree))
	return tree
}

func (s *DocumentStoreIntegrationSuite) TestListPreservesInsertionOrder() {
	s.newTree("t-b", "Pine", domain.HealthHealthy, nil)
	s.newTree("t-a", "Cedar", domain.HealthHealthy, nil)

	trees, err := s.trees.List(s.ctx, domain.TreeFilter{})
	s.Require().NoError(err)
	s.Require().Len(trees, 2)
	s.Equal("t-b", trees[0].ID)
	s.Equal("1", trees[0].StoreKey)
	s.Equal("t-a", trees[1].ID)
}

func (s *DocumentStoreIntegrationSuite) TestAreaIDNullClearsReference() {
	area := "area-1"
	s.newTree("t-1", "Cedar", domain.HealthHealthy, &area)

	count, err := s.trees.CountByArea(s.ctx, area)
	s.Require().NoError(err)
	s.Equal(int64(1), count)

	s.Require().NoError(s.trees.Update(s.ctx, "t-1", domain.Fields{"area_id": nil}))

	tree, err := s.trees.GetByID(s.ctx, "t-1")
	s.Require().NoError(err)
	s.Nil(tree.AreaID)

	count, err = s.trees.CountByArea(s.ctx, area)
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *DocumentStoreIntegrationSuite) TestAddPhotoAppends() {
	s.newTree("t-1", "Cedar", domain.HealthHealthy, nil)

	for _, id := range []string{"p1", "p2"} {
		err := s.trees.AddPhoto(s.ctx, "t-1", &domain.Photo{ID: id, Filename: id + ".jpg", Path: "uploads/" + id + ".jpg"})
		s.Require().NoError(err)
	}

	tree, err := s.trees.GetByID(s.ctx, "t-1")
	s.Require().NoError(err)
	s.Require().Len(tree.Photos, 2)
	s.Equal("p1", tree.Photos[0].ID)
	s.Equal("p2", tree.Photos[1].ID)

	deleted, err := s.trees.Delete(s.ctx, "t-1")
	s.Require().NoError(err)
	s.Equal([]string{"uploads/p1.jpg", "uploads/p2.jpg"}, deleted.PhotoPaths())

	_, err = s.trees.Delete(s.ctx, "t-1")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *DocumentStoreIntegrationSuite) TestWorkAreaDoesNotStoreTreeCount() {
	area := &domain.WorkArea{ID: "a-1", Name: "North", Status: domain.WorkAreaStatusActive, Boundary: [][]float64{{35, 139}, {35.1, 139.1}}, TreeCount: 7}
	s.Require().NoError(s.areas.Create(s.ctx, area))

	var raw string
	err := s.testDB.DB.Get(&raw, "SELECT doc::text FROM work_areas WHERE id = $1", "a-1")
	s.Require().NoError(err)
	s.NotContains(raw, "tree_count")
}

func (s *DocumentStoreIntegrationSuite) TestAnalytics() {
	s.newTree("t-1", "A", domain.HealthHealthy, nil)
	s.newTree("t-2", "A", domain.HealthWarning, nil)
	s.newTree("t-3", "B", domain.HealthCritical, nil)

	err := testhelpers.LoadDocuments(s.ctx, s.testDB.DB, domain.CollectionMeasurements, []testhelpers.FixtureDocument{
		{ID: "m-1", Doc: `{"id":"m-1","distance":10}`},
	})
	s.Require().NoError(err)

	summary, err := s.analytics.Summary(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(3), summary.TotalTrees)
	s.Equal(int64(1), summary.HealthyTrees)
	s.Equal(int64(1), summary.WarningTrees)
	s.Equal(int64(1), summary.CriticalTrees)
	s.Equal(int64(1), summary.TotalMeasurements)

	dist, err := s.analytics.SpeciesDistribution(s.ctx)
	s.Require().NoError(err)
	s.Equal([]domain.SpeciesCount{{Species: "A", Count: 2}, {Species: "B", Count: 1}}, dist)

	n, err := testhelpers.CountRows(s.ctx, s.testDB.DB, domain.CollectionTrees)
	s.Require().NoError(err)
	s.Equal(3, n)
}

func TestDocumentStoreIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration suite skipped in short mode")
	}
	suite.Run(t, new(DocumentStoreIntegrationSuite))
}
