// Package service holds helpers shared by the resource services.
package service

import (
	"errors"
	"fmt"

	"github.com/healthone/clinic-api/internal/repository"
	apperrors "github.com/healthone/clinic-api/pkg/errors"
)

// StorageError converts a repository error into an application error.
// ErrNotFound becomes NotFound for resource; anything else is internal and
// keeps op in its chain for the logs.
func StorageError(err error, resource, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NotFound(resource, err)
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.Internal(fmt.Errorf("failed to %s: %w", op, err))
}

// OrEmpty keeps NOT NULL array columns from receiving a nil slice.
func OrEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
