package impl

import (
	"context"
	"log/slog"
	"time"

	"tarjeta/config"
	deliverycontext "tarjeta/internal/delivery/context"
	"tarjeta/internal/domain/entity"
	domainerrors "tarjeta/internal/domain/errors"
	"tarjeta/internal/domain/repository"
	"tarjeta/internal/domain/service"
	"tarjeta/internal/errors"
	"tarjeta/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultMinPasswordLength = 6

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager         repository.TransactionManager
	users             repository.UserRepository
	hasher            service.PasswordHasher
	cache             service.CardCache
	events            *eventEmitter
	minPasswordLength int
	logger            *slog.Logger
	now               func() time.Time
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Users     repository.UserRepository
	Hasher    service.PasswordHasher
	Cache     service.CardCache
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAdminService creates the admin account management use case.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	minLength := defaultMinPasswordLength
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.MinPasswordLength > 0 {
		minLength = params.Config.Auth.MinPasswordLength
	}

	return &adminService{
		txManager:         params.TxManager,
		users:             params.Users,
		hasher:            params.Hasher,
		cache:             params.Cache,
		events:            newEventEmitter(params.Publisher, params.Logger),
		minPasswordLength: minLength,
		logger:            params.Logger,
		now:               time.Now,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns every account.
func (srv *adminService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.users.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// ToggleActive flips the active flag of an account.
func (srv *adminService) ToggleActive(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return srv.updateUser(ctx, userID, func(user *entity.User) {
		user.IsActive = !user.IsActive
	})
}

// ExtendPlan grants one more paid period.
func (srv *adminService) ExtendPlan(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var expires time.Time

	user, err := srv.updateUser(ctx, userID, func(user *entity.User) {
		expires = entity.ExtendPlan(user, srv.now())
	})
	if err != nil {
		return nil, err
	}

	srv.events.emit(ctx, service.EventPlanChanged, user.ID.String(), map[string]string{
		"plan":       user.Plan.String(),
		"expires_at": expires.UTC().Format(time.RFC3339),
		"source":     "admin",
	})

	return user, nil
}

// RegenerateLicense issues a new license key.
func (srv *adminService) RegenerateLicense(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return srv.updateUser(ctx, userID, func(user *entity.User) {
		user.LicenseKey = uuid.NewString()
	})
}

// ResetPassword replaces the password of an account.
func (srv *adminService) ResetPassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	if len([]rune(newPassword)) < srv.minPasswordLength {
		return domainerrors.ErrPasswordTooShort
	}

	hash, err := srv.hasher.Hash(newPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.String("user_id", userID.String()), slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed
	}

	_, err = srv.updateUser(ctx, userID, func(user *entity.User) {
		user.PasswordHash = hash
	})

	return err
}

// DeleteUser removes the user, the card and its links in one transaction.
func (srv *adminService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	var deletedCard *entity.Card

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		users := factory.NewUserRepository()
		cards := factory.NewCardRepository()

		if _, err := users.FindByID(ctx, userID); err != nil {
			return err
		}

		card, err := cards.FindByUserID(ctx, userID)
		switch {
		case err == nil:
			if err := cards.DeleteByUserID(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to delete card")
			}
			deletedCard = card
		case !errors.Is(err, repository.ErrCardNotFound):
			return errors.Wrap(err, "failed to find card by user")
		}

		if err := users.Delete(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		srv.log(ctx).Error("Failed to delete user", slog.String("user_id", userID.String()), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute delete user transaction")
	}

	attrs := map[string]string{}
	if deletedCard != nil {
		if err := srv.cache.Invalidate(ctx, deletedCard); err != nil {
			srv.log(ctx).Warn("Failed to invalidate card cache", slog.String("slug", deletedCard.Slug), slog.Any("error", err))
		}
		attrs["card_id"] = deletedCard.ID.String()
		attrs["slug"] = deletedCard.Slug
	}
	srv.events.emit(ctx, service.EventUserDeleted, userID.String(), attrs)

	return nil
}

func (srv *adminService) updateUser(ctx context.Context, userID uuid.UUID, mutate func(*entity.User)) (*entity.User, error) {
	user, err := srv.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	mutate(user)
	user.UpdatedAt = srv.now()

	if err := srv.users.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to update user", slog.String("user_id", userID.String()), slog.Any("error", err))

		return nil, domainerrors.ErrUserUpdateFailed
	}

	return user, nil
}
