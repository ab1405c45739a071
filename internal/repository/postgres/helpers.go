package postgres

import (
	"database/sql"
	"fmt"

	"github.com/schedcu/optimizer/internal/repository"
)

// requireRowsAffected converts a zero-rows-affected update/delete into a
// NotFoundError, the convention the teacher's repositories follow.
func requireRowsAffected(result sql.Result, resourceType, resourceID string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return &repository.NotFoundError{ResourceType: resourceType, ResourceID: resourceID}
	}
	return nil
}
