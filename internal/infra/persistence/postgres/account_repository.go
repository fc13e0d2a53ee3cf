// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"snaptext/internal/domain/entity"
	domainerrors "snaptext/internal/domain/errors"
	"snaptext/internal/domain/repository"
	"snaptext/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM), nil
}

// FindByUsername retrieves a single account by its case-sensitive username.
func (repo *accountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&accountM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by username")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account entity to the database.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUsernameTaken.WrapMessage("username already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInternalError.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Update the account entity with the generated ID and timestamp
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt

	return nil
}

// ListAll returns every account, newest-first by creation time.
func (repo *accountRepository) ListAll(ctx context.Context) ([]*entity.Account, error) {
	var accountModels []*model.AccountModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&accountModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for _, accountM := range accountModels {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

// ListByApprovalState returns accounts in the given state, newest-first.
func (repo *accountRepository) ListByApprovalState(ctx context.Context, state entity.ApprovalState) ([]*entity.Account, error) {
	var accountModels []*model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("approval_state = ?", state.String()).
		Order("created_at DESC").
		Find(&accountModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts by approval state")
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for _, accountM := range accountModels {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

// UpdateApprovalState sets the approval state with a single UPDATE statement.
// The write is atomic at the row level, so concurrent transitions and
// sweeper activity on the same account cannot lose updates.
func (repo *accountRepository) UpdateApprovalState(ctx context.Context, id uuid.UUID, state entity.ApprovalState) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Update("approval_state", state.String())

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update approval state")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// UpdatePasswordHash replaces the stored credential hash atomically.
func (repo *accountRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password hash")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// SetAdmin promotes the account to the admin role and marks it approved.
func (repo *accountRepository) SetAdmin(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"role":           entity.RoleAdmin.String(),
			"approval_state": entity.ApprovalApproved.String(),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set admin role")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// Delete removes the account and its owned history records.
func (repo *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", id).Delete(&model.HistoryRecordModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete owned history records")
		}

		result := tx.Where("id = ?", id).Delete(&model.AccountModel{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete account")
		}
		if result.RowsAffected == 0 {
			return repository.ErrAccountNotFound
		}

		return nil
	})

	return err
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:            data.ID,
		Username:      data.Username,
		PasswordHash:  data.PasswordHash,
		Role:          entity.Role(data.Role),
		ApprovalState: entity.ApprovalState(data.ApprovalState),
		CreatedAt:     data.CreatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:            data.ID,
		Username:      data.Username,
		PasswordHash:  data.PasswordHash,
		Role:          data.Role.String(),
		ApprovalState: data.ApprovalState.String(),
		CreatedAt:     data.CreatedAt,
	}
}
