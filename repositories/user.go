//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"ichat/domain"
	"ichat/errors"

	"github.com/lib/pq"
)

type IUserRepository interface {
	Create(ctx context.Context, email, passwordHash, fullname string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByID(ctx context.Context, id domain.UserID) (domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
}

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) IUserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, email, passwordHash, fullname string) (domain.User, error) {
	var user domain.User
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (email, password_hash, fullname, created_at)
		VALUES ($1, $2, $3, now())
		RETURNING id, email, fullname, created_at`,
		email, passwordHash, fullname,
	).Scan(&user.ID, &user.Email, &user.Fullname, &user.CreatedAt)

	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return domain.User{}, errors.ErrUserAlreadyExists
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}
	user.PasswordHash = passwordHash
	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, `
		SELECT id, email, fullname, password_hash, created_at
		FROM users WHERE email = $1`, email))
}

func (r *UserRepository) FindByID(ctx context.Context, id domain.UserID) (domain.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, `
		SELECT id, email, fullname, password_hash, created_at
		FROM users WHERE id = $1`, id))
}

// ListAll returns every registered user, the directory shown when picking
// chat members. Password hashes are not loaded here.
func (r *UserRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, email, fullname, created_at
		FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Email, &user.Fullname, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) scanUser(row *sql.Row) (domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.Fullname, &user.PasswordHash, &user.CreatedAt)
	if stderrors.Is(err, sql.ErrNoRows) {
		return domain.User{}, errors.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("scan user: %w", err)
	}
	return user, nil
}
