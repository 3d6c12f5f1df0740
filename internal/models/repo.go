package models

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
)

var Validate = validator.New()

// SQLiteRepo implements every ledger interface against the shared sqlite
// store. A single repo value is safe for concurrent use; each operation is
// an independent unit of work on the underlying pool.
type SQLiteRepo struct {
	db *sql.DB
}

func NewSQLiteRepo(db *sql.DB) *SQLiteRepo {
	return &SQLiteRepo{db: db}
}
