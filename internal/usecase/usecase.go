package usecase

import (
	"context"
	"time"

	"team-focus-service/internal/notifier"
	"team-focus-service/internal/repository"
	"team-focus-service/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	AuthUsecaseInterface
	UserUsecaseInterface
	TeamUsecaseInterface
	MembershipUsecaseInterface
	SessionUsecaseInterface
	TaskUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	notif notifier.Notifier,
	inviteBaseURL string,
	timeout time.Duration,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, notif, inviteBaseURL, timeout)
}
