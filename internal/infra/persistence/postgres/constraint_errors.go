package postgres

import (
	"strings"

	"tarjeta/internal/errors"

	"gorm.io/gorm"
)

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// 23505 is unique_violation; seen when TranslateError is not enabled on the dialector.
	return strings.Contains(err.Error(), "23505")
}

// violatesConstraint reports whether a PostgreSQL error names the given constraint or index.
func violatesConstraint(err error, name string) bool {
	return strings.Contains(strings.ToLower(err.Error()), strings.ToLower(name))
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return strings.Contains(err.Error(), "23503")
}
