package usecase

import (
	"context"
	"errors"
	"testing"

	"chantierplus/internal/domain/entities"
	mock_interfaces "chantierplus/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAvenantUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewAvenantUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidAvenantID) {
			t.Fatalf("expected ErrInvalidAvenantID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAvenantRepository(ctrl)
		uc := NewAvenantUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "av-1").Return(entities.Avenant{}, nil)
		_, err := uc.GetByID(context.Background(), "av-1")
		if !errors.Is(err, ErrAvenantNotFound) {
			t.Fatalf("expected ErrAvenantNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAvenantRepository(ctrl)
		uc := NewAvenantUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "av-1").Return(entities.Avenant{}, errors.New("db"))
		_, err := uc.GetByID(context.Background(), "av-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAvenantRepository(ctrl)
		uc := NewAvenantUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "av-1").Return(entities.Avenant{ID: "av-1", ChantierID: "c-1"}, nil)
		a, err := uc.GetByID(context.Background(), "av-1")
		if err != nil || a.ChantierID != "c-1" {
			t.Fatalf("unexpected result: %+v err=%v", a, err)
		}
	})
}

func TestAvenantUseCase_ListByChantierID(t *testing.T) {
	t.Run("invalid chantier", func(t *testing.T) {
		uc := NewAvenantUseCase(nil, nil)
		_, err := uc.ListByChantierID(context.Background(), "")
		if !errors.Is(err, ErrInvalidChantierID) {
			t.Fatalf("expected ErrInvalidChantierID, got %v", err)
		}
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAvenantRepository(ctrl)
		uc := NewAvenantUseCase(repo, nil)

		repo.EXPECT().ListByChantierID(gomock.Any(), "c-1").Return(nil, nil)
		list, err := uc.ListByChantierID(context.Background(), "c-1")
		if err != nil || list == nil || len(list) != 0 {
			t.Fatalf("unexpected result: %v err=%v", list, err)
		}
	})
}

func TestAvenantUseCase_SendEmail(t *testing.T) {
	t.Run("notification disabled", func(t *testing.T) {
		uc := NewAvenantUseCase(nil, nil)
		_, err := uc.SendEmail(context.Background(), "av-1")
		if !errors.Is(err, ErrNotifyDisabled) {
			t.Fatalf("expected ErrNotifyDisabled, got %v", err)
		}
	})

	t.Run("delivery failure keeps status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAvenantRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewAvenantUseCase(repo, NewNotificationDispatcher(notifier, repo, []string{"bureau@example.com"}))

		repo.EXPECT().GetByID(gomock.Any(), "av-1").Return(entities.Avenant{ID: "av-1", Status: entities.AvenantStatusSigned}, nil)
		notifier.EXPECT().SendAvenant(gomock.Any(), "bureau@example.com", gomock.Any()).Return(errors.New("ses"))

		_, err := uc.SendEmail(context.Background(), "av-1")
		if !errors.Is(err, ErrUpstreamRejected) {
			t.Fatalf("expected ErrUpstreamRejected, got %v", err)
		}
	})

	t.Run("sends to every recipient once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAvenantRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewAvenantUseCase(repo, NewNotificationDispatcher(notifier, repo, []string{"bureau@example.com", "Client@example.com"}))

		a := entities.Avenant{ID: "av-1", Status: entities.AvenantStatusSigned, Recipients: []string{"client@example.com"}}
		repo.EXPECT().GetByID(gomock.Any(), "av-1").Return(a, nil)
		notifier.EXPECT().SendAvenant(gomock.Any(), "client@example.com", a).Return(nil)
		notifier.EXPECT().SendAvenant(gomock.Any(), "bureau@example.com", a).Return(nil)
		repo.EXPECT().UpdateStatusByID(gomock.Any(), "av-1", entities.AvenantStatusSent).Return(entities.Avenant{ID: "av-1", Status: entities.AvenantStatusSent}, nil)

		got, err := uc.SendEmail(context.Background(), "av-1")
		if err != nil || got.Status != entities.AvenantStatusSent {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})

	t.Run("no recipients", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAvenantRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewAvenantUseCase(repo, NewNotificationDispatcher(notifier, repo, nil))

		repo.EXPECT().GetByID(gomock.Any(), "av-1").Return(entities.Avenant{ID: "av-1"}, nil)
		_, err := uc.SendEmail(context.Background(), "av-1")
		if !errors.Is(err, ErrNoRecipients) {
			t.Fatalf("expected ErrNoRecipients, got %v", err)
		}
	})
	t.Run("stored recipient with a header line is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAvenantRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewAvenantUseCase(repo, NewNotificationDispatcher(notifier, repo, nil))

		a := entities.Avenant{ID: "av-1", Recipients: []string{"a@b.fr\r\nBcc:evil@x.com"}}
		repo.EXPECT().GetByID(gomock.Any(), "av-1").Return(a, nil)
		_, err := uc.SendEmail(context.Background(), "av-1")
		if !errors.Is(err, ErrNoRecipients) {
			t.Fatalf("expected ErrNoRecipients, got %v", err)
		}
	})
}
