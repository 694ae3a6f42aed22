package store

import "github.com/MKhiriev/go-expense-keeper/internal/logger"

// Storages groups the repositories built on one database pool.
type Storages struct {
	UserRepository    UserRepository
	ExpenseRepository ExpenseRepository
}

// NewStorages builds every repository on db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		ExpenseRepository: NewExpenseRepository(db, log),
	}
}
