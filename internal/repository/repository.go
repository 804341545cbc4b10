package repository

import (
	"context"
	"deepdetect/internal/db"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrUserExists error = errors.New("user already exists")
var ErrHistoryNotFound error = errors.New("history not found")

var TimeNow = time.Now

type Repository struct {
	db Storage
}

func NewRepository(db Storage) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Migrate() error {
	err := r.db.MigrateModels(&User{}, &History{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}
	return nil
}

func (r *Repository) CreateUser(ctx context.Context, username, email, passwordHash string) (User, error) {
	now := TimeNow().UTC()
	user := User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        normalizeEmail(email),
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := r.db.Create(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return User{}, ErrUserExists
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	return r.getUserBy(ctx, "email", normalizeEmail(email))
}

func (r *Repository) GetUserByID(ctx context.Context, id string) (User, error) {
	return r.getUserBy(ctx, "id", id)
}

func (r *Repository) getUserBy(ctx context.Context, column, value string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, column, value, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by %s: %w", column, err)
	}

	return user, nil
}

func (r *Repository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	err := r.db.UpdateColumn(ctx, &User{}, userID, "password_hash", passwordHash)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (r *Repository) CreateHistory(ctx context.Context, history History) (History, error) {
	history.ID = uuid.NewString()
	history.CreatedAt = TimeNow().UTC()
	if history.Timestamp.IsZero() {
		history.Timestamp = history.CreatedAt
	}

	if err := r.db.Create(ctx, &history); err != nil {
		return History{}, fmt.Errorf("create history: %w", err)
	}
	return history, nil
}

// ListHistory returns the records owned by userID, newest first.
func (r *Repository) ListHistory(ctx context.Context, userID string) ([]History, error) {
	histories := []History{}
	err := r.db.GetAllBy(ctx, "user_id", userID, "timestamp desc", &histories)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return histories, nil
}

func (r *Repository) DeleteHistory(ctx context.Context, userID, historyID string) error {
	if _, err := uuid.Parse(historyID); err != nil {
		return ErrHistoryNotFound
	}

	err := r.db.DeleteWhere(ctx, &History{},
		db.Cond{Column: "id", Value: historyID},
		db.Cond{Column: "user_id", Value: userID})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrHistoryNotFound
		}
		return fmt.Errorf("delete history: %w", err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
