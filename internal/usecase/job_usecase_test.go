package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/apperr"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	mock_interfaces "github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type jobMocks struct {
	jobs      *mock_interfaces.MockIJobRepository
	customers *mock_interfaces.MockICustomerRepository
	employees *mock_interfaces.MockIEmployeeRepository
}

func newJobUseCaseForTest(t *testing.T) (*JobUseCase, jobMocks) {
	ctrl := gomock.NewController(t)
	m := jobMocks{
		jobs:      mock_interfaces.NewMockIJobRepository(ctrl),
		customers: mock_interfaces.NewMockICustomerRepository(ctrl),
		employees: mock_interfaces.NewMockIEmployeeRepository(ctrl),
	}
	uc := NewJobUseCase(m.jobs, m.customers, m.employees)
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func TestJobUseCase_Create(t *testing.T) {
	date := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)

	t.Run("customer is required", func(t *testing.T) {
		uc, _ := newJobUseCaseForTest(t)
		if _, err := uc.Create(context.Background(), JobInput{Date: date}); !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("unknown customer", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.customers.EXPECT().GetByID(gomock.Any(), "CUST9").Return(entities.Customer{}, nil)
		if _, err := uc.Create(context.Background(), JobInput{CustomerID: "CUST9", Date: date}); !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("references resolved by id", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.customers.EXPECT().GetByID(gomock.Any(), "CUST1").Return(entities.Customer{ID: "CUST1", Name: "Acme Dental", Address: "9 Elm St"}, nil)
		m.employees.EXPECT().GetByID(gomock.Any(), "EMP1").Return(entities.Employee{ID: "EMP1", Name: "Bo"}, nil)
		m.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) { return j, nil },
		)

		j, err := uc.Create(context.Background(), JobInput{CustomerID: "CUST1", EmployeeID: "EMP1", Date: date, Time: "09:00", Price: 180})
		require.NoError(t, err)
		assert.Equal(t, "CUST1", j.CustomerID)
		assert.Equal(t, "Acme Dental", j.CustomerName)
		assert.Equal(t, "EMP1", j.EmployeeID)
		assert.Equal(t, "Bo", j.EmployeeName)
		assert.Equal(t, "9 Elm St", j.Address)
		assert.Equal(t, entities.JobStatusScheduled, j.Status)
		assert.Equal(t, "2025-03-20", j.DateKey())
	})
}

func TestJobUseCase_ListForEmployee(t *testing.T) {
	uc, m := newJobUseCaseForTest(t)
	date := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	m.jobs.EXPECT().ListByDate(gomock.Any(), date).Return([]entities.Job{
		{ID: "J2", EmployeeID: "EMP1", Time: "13:00", Date: date, Status: entities.JobStatusScheduled},
		{ID: "J1", EmployeeID: "EMP1", Time: "08:00", Date: date, Status: entities.JobStatusScheduled},
		{ID: "J3", EmployeeID: "EMP2", Time: "09:00", Date: date, Status: entities.JobStatusScheduled},
		{ID: "J4", EmployeeID: "EMP1", Time: "10:00", Date: date, Status: entities.JobStatusCancelled},
	}, nil)

	jobs, err := uc.ListForEmployee(context.Background(), "EMP1", date)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "J1", jobs[0].ID)
	assert.Equal(t, "J2", jobs[1].ID)
}

func TestJobUseCase_CheckInAndComplete(t *testing.T) {
	t.Run("other employee's job", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), "J1").Return(entities.Job{ID: "J1", EmployeeID: "EMP2", Status: entities.JobStatusScheduled}, nil)
		if _, err := uc.CheckIn(context.Background(), "J1", "EMP1"); !errors.Is(err, ErrJobNotAssigned) {
			t.Fatalf("expected ErrJobNotAssigned, got %v", err)
		}
	})

	t.Run("check in", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), "J1").Return(entities.Job{ID: "J1", EmployeeID: "EMP1", Status: entities.JobStatusScheduled}, nil)
		m.jobs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) { return j, nil },
		)
		j, err := uc.CheckIn(context.Background(), "J1", "EMP1")
		require.NoError(t, err)
		assert.Equal(t, entities.JobStatusInProgress, j.Status)
		assert.Equal(t, fixedNow, j.CheckInTime)
	})

	t.Run("complete with notes and photo", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), "J1").Return(entities.Job{ID: "J1", EmployeeID: "EMP1", Status: entities.JobStatusInProgress, Notes: "gate code 12"}, nil)
		m.jobs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) { return j, nil },
		)
		j, err := uc.Complete(context.Background(), "J1", "EMP1", "all rooms done", "J1_1.jpg")
		require.NoError(t, err)
		assert.True(t, j.Completed)
		assert.Equal(t, entities.JobStatusCompleted, j.Status)
		assert.Equal(t, "gate code 12\nall rooms done", j.Notes)
		assert.Equal(t, "J1_1.jpg", j.Photos)
		assert.Equal(t, fixedNow, j.CheckOutTime)
	})

	t.Run("closed job", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), "J1").Return(entities.Job{ID: "J1", Status: entities.JobStatusCompleted}, nil)
		if _, err := uc.Complete(context.Background(), "J1", "", "", ""); !errors.Is(err, ErrJobClosed) {
			t.Fatalf("expected ErrJobClosed, got %v", err)
		}
	})
}

func TestJobUseCase_Cancel(t *testing.T) {
	uc, m := newJobUseCaseForTest(t)
	m.jobs.EXPECT().UpdateStatus(gomock.Any(), "J404", entities.JobStatusCancelled).Return(apperr.NotFound("Jobs", "J404"))
	if err := uc.Cancel(context.Background(), "J404"); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}
