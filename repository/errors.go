package repository

import (
	"assettracker/models"
	"database/sql"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

const (
	uniqueViolation        = "23505"
	serialNumberConstraint = "assets_serial_number_key"
)

// translate maps driver errors onto domain errors and wraps everything else.
func translate(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return errors.Wrap(models.ErrNotFound, msg)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation && pqErr.Constraint == serialNumberConstraint {
		return errors.Wrap(models.ErrDuplicateSerialNumber, msg)
	}
	return errors.Wrap(err, msg)
}

type rowsAffected interface {
	RowsAffected() (int64, error)
}

func expectAffected(res rowsAffected, msg string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if n == 0 {
		return errors.Wrap(models.ErrNotFound, msg)
	}
	return nil
}
