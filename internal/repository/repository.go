package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"stekfinance/internal/db"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound     error = errors.New("user not found")
	ErrTransferNotFound error = errors.New("internal transfer not found")
)

var TimeNow = time.Now

type Repository struct {
	db Storage
}

func NewRepository(db Storage) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &InternalTransfer{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// UpsertUser stores user keyed by email. An existing user keeps its id and
// creation time, other fields are replaced.
func (r *Repository) UpsertUser(ctx context.Context, user User) (User, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Email == "" {
		return User{}, errors.New("upsert user: email is required")
	}

	var existing User
	err := r.db.GetOneBy(ctx, "email", user.Email, &existing)
	switch {
	case err == nil:
		user.ID = existing.ID
		user.CreatedAt = existing.CreatedAt
	case errors.Is(err, db.ErrNotFound):
		user.ID = uuid.NewString()
		user.CreatedAt = TimeNow()
	default:
		return User{}, fmt.Errorf("get user by email: %w", err)
	}

	users := []User{user}
	if err := r.db.SaveToTable(ctx, &users); err != nil {
		return User{}, fmt.Errorf("save user: %w", err)
	}

	return user, nil
}

func (r *Repository) GetUserByID(ctx context.Context, id string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "id", id, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

func (r *Repository) GetInternalTransfer(ctx context.Context, hash string) (InternalTransfer, error) {
	var transfer InternalTransfer

	err := r.db.GetOneBy(ctx, "transaction_hash", strings.ToLower(hash), &transfer)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return InternalTransfer{}, ErrTransferNotFound
		}
		return InternalTransfer{}, fmt.Errorf("get internal transfer: %w", err)
	}

	return transfer, nil
}

func (r *Repository) SaveInternalTransfer(ctx context.Context, transfer InternalTransfer) error {
	transfer.TransactionHash = strings.ToLower(transfer.TransactionHash)
	if transfer.CreatedAt.IsZero() {
		transfer.CreatedAt = TimeNow()
	}

	transfers := []InternalTransfer{transfer}
	if err := r.db.SaveToTable(ctx, &transfers); err != nil {
		return fmt.Errorf("save internal transfer: %w", err)
	}

	return nil
}
