package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "tarjeta/internal/delivery/context"
	"tarjeta/internal/domain/entity"
	domainerrors "tarjeta/internal/domain/errors"
	"tarjeta/internal/domain/repository"
	"tarjeta/internal/domain/service"
	"tarjeta/internal/errors"
	"tarjeta/internal/usecase"

	"go.uber.org/fx"
)

type planService struct {
	users  repository.UserRepository
	events *eventEmitter
	logger *slog.Logger
	now    func() time.Time
}

// PlanServiceParams holds dependencies for PlanService, injected by Fx.
type PlanServiceParams struct {
	fx.In

	Users     repository.UserRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewPlanService creates the payment webhook use case.
func NewPlanService(params PlanServiceParams) usecase.PlanUsecase {
	return &planService{
		users:  params.Users,
		events: newEventEmitter(params.Publisher, params.Logger),
		logger: params.Logger,
		now:    time.Now,
	}
}

// ApplyPayment extends the plan of the paying user when the payment was approved.
// Other statuses are acknowledged without changes.
func (srv *planService) ApplyPayment(ctx context.Context, input *usecase.PaymentNotification) (*usecase.PlanChange, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(slog.String("user_id", input.UserID.String()))

	if !strings.EqualFold(strings.TrimSpace(input.Status), usecase.PaymentStatusApproved) {
		logger.Info("Ignoring payment notification", slog.String("status", input.Status))

		return &usecase.PlanChange{UserID: input.UserID}, nil
	}

	user, err := srv.users.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	now := srv.now()
	expires := entity.ExtendPlan(user, now)
	user.UpdatedAt = now

	if err := srv.users.Update(ctx, user); err != nil {
		logger.Error("Failed to apply payment", slog.Any("error", err))

		return nil, domainerrors.ErrUserUpdateFailed
	}

	logger.Info("Plan extended", slog.Time("expires_at", expires))
	srv.events.emit(ctx, service.EventPlanChanged, user.ID.String(), map[string]string{
		"plan":       user.Plan.String(),
		"expires_at": expires.UTC().Format(time.RFC3339),
		"source":     "webhook",
	})

	return &usecase.PlanChange{
		Applied:   true,
		UserID:    user.ID,
		Plan:      user.Plan,
		ExpiresAt: &expires,
	}, nil
}
