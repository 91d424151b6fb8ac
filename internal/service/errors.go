package service

import (
	"database/sql"
	"errors"
	"fmt"

	"survey-console/internal/domain"
)

// repoError maps a repository failure to a domain error.
// sql.ErrNoRows from a write means the target row does not exist.
func repoError(err error, op, entity, id string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(entity, id)
	}
	return domain.NewInternalError(fmt.Sprintf("failed to %s %s", op, entity), err)
}

func notFound(entity, id string) error {
	return domain.NewNotFoundError(fmt.Sprintf("%s not found", entity)).WithContext("id", id)
}
