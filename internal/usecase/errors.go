package usecase

import (
	"errors"
	"fmt"

	"github.com/forest-management-gis/internal/domain"
	apperrors "github.com/forest-management-gis/internal/pkg/errors"
)

// storeError переводит ошибку репозитория в AppError: ErrNotFound -> notFound,
// остальное -> ErrDatabaseError с исходной причиной в цепочке
func storeError(op string, err error, notFound *apperrors.AppError) error {
	if notFound != nil && errors.Is(err, domain.ErrNotFound) {
		return notFound
	}
	return fmt.Errorf("%s: %w: %w", op, apperrors.ErrDatabaseError, err)
}
