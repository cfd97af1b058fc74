package repositories

import (
	"errors"

	"github.com/go-pg/pg/v10"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

type repository struct {
	db *pg.DB
}

// notFound maps a missing row to ErrNotFound so callers can tell absence from failure.
func notFound(err error) error {
	if errors.Is(err, pg.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
