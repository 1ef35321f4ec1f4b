package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/apperr"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	mock_interfaces "github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCustomerUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICustomerRepository(ctrl)
	uc := NewCustomerUseCase(repo)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Customer{
		{ID: "C1", Status: entities.CustomerStatusActive},
		{ID: "C2", Status: entities.CustomerStatusInactive},
		{ID: "C3", Status: entities.CustomerStatusDeleted},
	}, nil).Times(2)

	active, err := uc.List(context.Background(), false)
	if err != nil || len(active) != 1 || active[0].ID != "C1" {
		t.Fatalf("unexpected active list %+v err=%v", active, err)
	}
	withInactive, err := uc.List(context.Background(), true)
	if err != nil || len(withInactive) != 2 {
		t.Fatalf("deleted customers must stay hidden, got %+v err=%v", withInactive, err)
	}
}

func TestCustomerUseCase_Create(t *testing.T) {
	t.Run("name required", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		if _, err := uc.Create(context.Background(), entities.Customer{Name: " "}); !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.Customer{ID: "C1"}, nil)
		if _, err := uc.Create(context.Background(), entities.Customer{Name: "Ana", Email: " ana@example.com "}); !errors.Is(err, ErrCustomerExists) {
			t.Fatalf("expected ErrCustomerExists, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)
		now := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return now }

		repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.Customer{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if !strings.HasPrefix(c.ID, "CUST20250501080000") || c.Status != entities.CustomerStatusActive || !c.AddedDate.Equal(now) {
					t.Fatalf("unexpected customer %+v", c)
				}
				return c, nil
			},
		)
		if _, err := uc.Create(context.Background(), entities.Customer{Name: "Ana", Email: "ana@example.com"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCustomerUseCase_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICustomerRepository(ctrl)
	uc := NewCustomerUseCase(repo)
	added := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().GetByID(gomock.Any(), "C1").Return(entities.Customer{ID: "C1", AddedDate: added, Status: entities.CustomerStatusActive}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c entities.Customer) (entities.Customer, error) {
			if !c.AddedDate.Equal(added) || c.Status != entities.CustomerStatusActive || c.Phone != "555" {
				t.Fatalf("unexpected update %+v", c)
			}
			return c, nil
		},
	)
	if _, err := uc.Update(context.Background(), entities.Customer{ID: "C1", Name: "Ana", Phone: "555"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCustomerUseCase_Delete(t *testing.T) {
	t.Run("soft delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().UpdateStatus(gomock.Any(), "C1", entities.CustomerStatusDeleted).Return(nil)
		if err := uc.Delete(context.Background(), "C1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().UpdateStatus(gomock.Any(), "C9", entities.CustomerStatusDeleted).Return(apperr.NotFound("Customers", "C9"))
		if err := uc.Delete(context.Background(), "C9"); !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})
}
