package store

import "github.com/MKhiriev/go-user-registry/internal/logger"

// Storages groups the store dependencies handed to the service layer.
type Storages struct {
	UserRepository UserRepository
	HealthChecker  HealthChecker
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		HealthChecker:  db,
	}
}
