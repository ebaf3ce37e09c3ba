package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/metrics"
	"github.com/MKhiriev/go-user-registry/models"
)

// userRepository is the database/sql implementation of [UserRepository]
// over the "users" table. Queries are built with squirrel using the
// placeholder format of the connection's driver.
//
// All methods obtain a context-scoped logger via [logger.FromContext] so
// that database failures carry the request's trace id.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Str("driver", db.driver).Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// ListUsers returns all users ordered by ascending id.
//
// Any failure (query, scan, iteration) is wrapped as [ErrStoreUnavailable].
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUsersQuery(r.placeholder())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.storeError(ctx, "list_users", fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err = rows.Scan(&user.ID, &user.Username, &user.Email, scanTimestamp(&user.CreatedAt)); err != nil {
			return nil, r.storeError(ctx, "list_users", fmt.Errorf("%w: %w", ErrScanningRows, err))
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, r.storeError(ctx, "list_users", fmt.Errorf("%w: %w", ErrScanningRows, err))
	}

	log.Debug().Str("func", "*userRepository.ListUsers").Int("count", len(users)).Msg("users listed")
	return users, nil
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with the store-assigned ID and CreatedAt.
//
// Error handling:
//   - unique violation on username or email → [ErrUserAlreadyExists].
//   - any other driver-level error → wrapped [ErrStoreUnavailable].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.placeholder(), user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to create query")
		return models.User{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	var created models.User
	err = r.DB.QueryRowContext(ctx, query, args...).
		Scan(&created.ID, &created.Username, &created.Email, scanTimestamp(&created.CreatedAt))
	if err != nil {
		if r.errorClassificator.IsUniqueViolation(err) {
			log.Info().Str("func", "*userRepository.CreateUser").
				Str("username", user.Username).
				Msg("user with the same username or email already exists")
			return models.User{}, ErrUserAlreadyExists
		}

		return models.User{}, r.storeError(ctx, "create_user", err)
	}

	return created, nil
}

// storeError logs err with its retry classification, records it and wraps
// it as [ErrStoreUnavailable].
func (r *userRepository) storeError(ctx context.Context, operation string, err error) error {
	classification := r.errorClassificator.Classify(err)
	metrics.DBErrorsTotal.WithLabelValues(operation, classification.String()).Inc()

	logger.FromContext(ctx).Err(err).
		Str("func", "*userRepository").
		Str("operation", operation).
		Str("classification", classification.String()).
		Msg("store operation failed")

	return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, operation, err)
}
