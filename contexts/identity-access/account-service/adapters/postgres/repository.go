package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainerrors "minerva/contexts/identity-access/account-service/domain/errors"
	"minerva/contexts/identity-access/account-service/ports"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

type accountModel struct {
	AccountID    string    `gorm:"column:account_id;primaryKey"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (accountModel) TableName() string { return "accounts" }

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Migrate creates the accounts table and its unique email index.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&accountModel{})
}

func (r *Repository) CreateAccount(ctx context.Context, account ports.Account) error {
	row := accountModel{
		AccountID:    account.AccountID,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		CreatedAt:    account.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *Repository) GetAccountByEmail(ctx context.Context, email string) (ports.Account, error) {
	var row accountModel
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Account{}, domainerrors.ErrWrongCredentials
		}
		return ports.Account{}, err
	}
	return ports.Account{
		AccountID:    row.AccountID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
