package usecase_test

import (
	"fmt"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/domain"
	"github.com/forest-management-gis/internal/pkg/filestore"
)

// newMemFiles - файловое хранилище в памяти
func newMemFiles(t *testing.T) (*filestore.Store, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	files, err := filestore.New(fs, "uploads", zap.NewNop())
	require.NoError(t, err)
	return files, fs
}

func notFound(op string) error {
	return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
}

func eventOfType(eventType string) interface{} {
	return mock.MatchedBy(func(e domain.ForestEvent) bool {
		return e.Type == eventType
	})
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
