package usecase

import (
	"chantierplus/internal/domain/entities"
	"chantierplus/internal/usecase/interfaces"
	"context"
	"errors"
	"strings"
)

var (
	ErrAvenantNotFound  = errors.New("avenant not found")
	ErrInvalidAvenantID = errors.New("invalid avenant id")
	ErrNotifyDisabled   = errors.New("notification not configured")
)

// IAvenantUseCase exposes the avenants already signed and stored.

type IAvenantUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Avenant, error)
	ListByChantierID(ctx context.Context, chantierID string) ([]entities.Avenant, error)
	SendEmail(ctx context.Context, id string) (entities.Avenant, error)
}

type AvenantUseCase struct {
	repo       interfaces.IAvenantRepository
	dispatcher *NotificationDispatcher
}

var _ IAvenantUseCase = (*AvenantUseCase)(nil)

func NewAvenantUseCase(repo interfaces.IAvenantRepository, dispatcher *NotificationDispatcher) *AvenantUseCase {
	return &AvenantUseCase{repo: repo, dispatcher: dispatcher}
}

func (u *AvenantUseCase) GetByID(ctx context.Context, id string) (entities.Avenant, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Avenant{}, ErrInvalidAvenantID
	}
	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Avenant{}, err
	}
	if a.ID == "" {
		return entities.Avenant{}, ErrAvenantNotFound
	}
	return a, nil
}

func (u *AvenantUseCase) ListByChantierID(ctx context.Context, chantierID string) ([]entities.Avenant, error) {
	chantierID = strings.TrimSpace(chantierID)
	if chantierID == "" {
		return nil, ErrInvalidChantierID
	}
	list, err := u.repo.ListByChantierID(ctx, chantierID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []entities.Avenant{}
	}
	return list, nil
}

// SendEmail is the manual dispatch path. Sending an already SENT avenant
// delivers it again.
func (u *AvenantUseCase) SendEmail(ctx context.Context, id string) (entities.Avenant, error) {
	if u.dispatcher == nil {
		return entities.Avenant{}, ErrNotifyDisabled
	}
	a, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Avenant{}, err
	}
	return u.dispatcher.Notify(ctx, a)
}
