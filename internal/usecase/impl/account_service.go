// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"snaptext/config"
	deliverycontext "snaptext/internal/delivery/context"
	"snaptext/internal/domain/entity"
	domainerrors "snaptext/internal/domain/errors"
	"snaptext/internal/domain/repository"
	"snaptext/internal/domain/service"
	"snaptext/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager     repository.TransactionManager
	accountRepo   repository.AccountRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	adminUsername string
	adminPassword string
	logger        *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	adminUsername := config.DefaultAdminUsername
	adminPassword := config.DefaultAdminPassword
	if params.Config != nil && params.Config.Admin != nil {
		if params.Config.Admin.Username != "" {
			adminUsername = params.Config.Admin.Username
		}
		if params.Config.Admin.Password != "" {
			adminPassword = params.Config.Admin.Password
		}
	}

	return &accountService{
		txManager:     params.TxManager,
		accountRepo:   params.AccountRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new pending account and mints a session token for it.
// The token is usable immediately so the client can poll its own approval
// status, but login stays gated until an administrator approves.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	newAccount := &entity.Account{
		Username:      input.Username,
		PasswordHash:  hashedPassword,
		Role:          entity.RoleStandard,
		ApprovalState: entity.ApprovalPending,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		if err := accountRepo.Create(ctx, newAccount); err != nil {
			return errors.Wrap(err, "failed to create account during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute registration transaction", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute account registration transaction")
	}

	token, err := srv.tokenService.Issue(newAccount.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after registration", slog.Any("accountID", newAccount.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token after registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", newAccount.ID))

	return &usecase.RegisterOutput{Token: token, Account: newAccount}, nil
}

// Login verifies credentials and mints a session token. The approval gate
// runs before the password check, so a known but unapproved username learns
// its state; unknown usernames and wrong passwords share one error.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("username", input.Username))

	account, err := srv.accountRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	if !account.CanAuthenticate() {
		srv.log(ctx).Warn("Login blocked by approval gate",
			slog.String("username", input.Username),
			slog.String("approvalState", account.ApprovalState.String()))

		return nil, approvalGateError(account.ApprovalState)
	}

	// bcrypt is CPU-bound; run it outside any transaction.
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.Issue(account.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token during login", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token during login")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{Token: token, Account: account}, nil
}

// Authenticate verifies the token and re-fetches the account it names, so
// a token minted before an account was deleted stops working immediately.
func (srv *accountService) Authenticate(ctx context.Context, token string) (*entity.Account, error) {
	claims, err := srv.tokenService.Validate(token)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("invalid session token")
	}

	account, err := srv.accountRepo.FindByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrUnauthenticated.WrapMessage("session account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load account for session")
	}

	return account, nil
}

// GetAccount retrieves a single account by ID.
func (srv *accountService) GetAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("account lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return account, nil
}

// ListAccounts returns every account, newest-first.
func (srv *accountService) ListAccounts(ctx context.Context) ([]*entity.Account, error) {
	accounts, err := srv.accountRepo.ListAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list accounts", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

// DeleteAccount removes an account and all of its history records in one
// transaction. The admin account can never be deleted.
func (srv *accountService) DeleteAccount(ctx context.Context, accountID uuid.UUID) error {
	srv.log(ctx).Info("Attempting to delete account", slog.Any("accountID", accountID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("account to delete does not exist")
			}

			return errors.Wrap(err, "failed to load account for deletion")
		}

		if account.IsAdmin() {
			return domainerrors.ErrAdminProtected.WrapMessage("refusing to delete the admin account")
		}

		if err := accountRepo.Delete(ctx, accountID); err != nil {
			return errors.Wrap(err, "failed to delete account")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete account", slog.Any("accountID", accountID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute account deletion transaction")
	}

	srv.log(ctx).Info("Account deleted", slog.Any("accountID", accountID))

	return nil
}

// EnsureAdminAccount reconciles the bootstrap admin account: create it when
// absent, otherwise reset its credential and re-assert the admin role and
// approved state. Safe to run on every startup.
func (srv *accountService) EnsureAdminAccount(ctx context.Context) error {
	srv.logger.Info("Reconciling admin account", slog.String("username", srv.adminUsername))

	hashedPassword, err := srv.hasher.Hash(srv.adminPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash admin password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		existing, err := accountRepo.FindByUsername(ctx, srv.adminUsername)
		if errors.Is(err, repository.ErrAccountNotFound) {
			adminAccount := &entity.Account{
				Username:      srv.adminUsername,
				PasswordHash:  hashedPassword,
				Role:          entity.RoleAdmin,
				ApprovalState: entity.ApprovalApproved,
			}

			if err := accountRepo.Create(ctx, adminAccount); err != nil {
				return errors.Wrap(err, "failed to create admin account")
			}

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to look up admin account")
		}

		if err := accountRepo.UpdatePasswordHash(ctx, existing.ID, hashedPassword); err != nil {
			return errors.Wrap(err, "failed to reset admin password")
		}

		if err := accountRepo.SetAdmin(ctx, existing.ID); err != nil {
			return errors.Wrap(err, "failed to re-assert admin role")
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to reconcile admin account", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute admin reconciliation transaction")
	}

	srv.logger.Info("Admin account ready", slog.String("username", srv.adminUsername))

	return nil
}

// approvalGateError maps a non-approved state to its login error.
func approvalGateError(state entity.ApprovalState) error {
	if state == entity.ApprovalRejected {
		return domainerrors.ErrAccountRejected.WrapMessage("login blocked by approval gate")
	}

	return domainerrors.ErrAccountPending.WrapMessage("login blocked by approval gate")
}
