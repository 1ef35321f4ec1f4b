package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/persistence/sheetrow"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/apperr"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/infrastructure/sheets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *sheets.Store {
	t.Helper()
	wb, err := sheets.NewWorkbookBackend("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = wb.Close() })
	s := sheets.NewStore(wb, sheets.WithCache(sheets.NewCache(time.Minute)))
	t.Cleanup(s.Close)
	return s
}

func TestQuoteSheetRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewQuoteSheetRepository(newTestStore(t), zap.NewNop())
	require.NoError(t, repo.Bootstrap(ctx))

	created := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	q := entities.Quote{
		ID:          "Q20250301093000ABCD",
		DateCreated: created,
		Customer:    entities.Contact{Name: "Acme Corp", Email: "ops@acme.test"},
		Properties:  []entities.Property{{ID: 1, FacilityType: "office", SquareFeet: 2000}},
		Costs:       entities.QuoteCosts{TotalAmount: 271.58, ProfitMargin: 35},
		Status:      entities.QuoteStatusPending,
		ValidUntil:  created.Add(entities.QuoteValidity),
		ServiceType: "regular",
		Frequency:   "weekly",
	}

	t.Run("create and get", func(t *testing.T) {
		_, err := repo.Create(ctx, q)
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, q.ID)
		require.NoError(t, err)
		assert.Equal(t, q.ID, got.ID)
		assert.Equal(t, "ops@acme.test", got.Customer.Email)
		assert.InDelta(t, 271.58, got.Costs.TotalAmount, 0.001)
		assert.True(t, got.ValidUntil.Equal(q.ValidUntil))
	})

	t.Run("missing id returns zero quote", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "Q404")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("status update is visible to cached reads", func(t *testing.T) {
		_, err := repo.List(ctx)
		require.NoError(t, err)
		require.NoError(t, repo.UpdateStatus(ctx, q.ID, entities.QuoteStatusContacted))

		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, entities.QuoteStatusContacted, list[0].Status)
	})

	t.Run("update rewrites the row", func(t *testing.T) {
		upd := q
		upd.Notes = "call after 5pm"
		upd.Status = entities.QuoteStatusDeclined
		upd.DeclineReason = "budget"
		_, err := repo.Update(ctx, upd)
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, q.ID)
		require.NoError(t, err)
		assert.Equal(t, "call after 5pm", got.Notes)
		assert.Equal(t, "budget", got.DeclineReason)
	})

	t.Run("unknown id on update", func(t *testing.T) {
		err := repo.UpdateStatus(ctx, "Q404", entities.QuoteStatusContacted)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestSheetRepository_SkipsUndecodableRows(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewJobSheetRepository(store, zap.NewNop())
	require.NoError(t, repo.Bootstrap(ctx))

	day := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)
	_, err := repo.Create(ctx, entities.Job{ID: "JOB1", CustomerName: "Acme", Date: day, Status: entities.JobStatusScheduled})
	require.NoError(t, err)

	bad := make([]string, len(sheetrow.JobHeader))
	bad[0], bad[2], bad[8] = "JOB2", "2025-05-02", "exploded"
	require.NoError(t, store.Append(ctx, sheetrow.JobsTable, bad))

	jobs, err := repo.ListByDate(ctx, day)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "JOB1", jobs[0].ID)
}

func TestJobSheetRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewJobSheetRepository(newTestStore(t), zap.NewNop())
	require.NoError(t, repo.Bootstrap(ctx))

	d1 := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 1)
	for _, j := range []entities.Job{
		{ID: "JOB1", CustomerID: "CUST1", Date: d1, EmployeeID: "EMP1", Status: entities.JobStatusScheduled},
		{ID: "JOB2", CustomerID: "CUST1", Date: d2, EmployeeID: "EMP1", Status: entities.JobStatusScheduled},
		{ID: "JOB3", CustomerID: "CUST2", Date: d1, EmployeeID: "EMP2", Status: entities.JobStatusScheduled},
	} {
		_, err := repo.Create(ctx, j)
		require.NoError(t, err)
	}

	onD1, err := repo.ListByDate(ctx, d1)
	require.NoError(t, err)
	assert.Len(t, onD1, 2)

	require.NoError(t, repo.UpdateStatus(ctx, "JOB1", entities.JobStatusCompleted))
	got, err := repo.GetByID(ctx, "JOB1")
	require.NoError(t, err)
	assert.Equal(t, entities.JobStatusCompleted, got.Status)
	assert.True(t, got.Completed)

	onD1, err = repo.ListByDate(ctx, d1)
	require.NoError(t, err)
	assert.Equal(t, entities.JobStatusCompleted, onD1[0].Status)
}

func TestCustomerSheetRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerSheetRepository(newTestStore(t), zap.NewNop())
	require.NoError(t, repo.Bootstrap(ctx))

	_, err := repo.Create(ctx, entities.Customer{ID: "CUST1", Name: "Old", Email: "a@b.test", Status: entities.CustomerStatusDeleted})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.Customer{ID: "CUST2", Name: "New", Email: "A@B.test", Status: entities.CustomerStatusActive})
	require.NoError(t, err)

	got, err := repo.GetByEmail(ctx, " a@b.TEST ")
	require.NoError(t, err)
	assert.Equal(t, "CUST2", got.ID)

	none, err := repo.GetByEmail(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, none.ID)
}

func TestEmployeeSheetRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeSheetRepository(newTestStore(t), zap.NewNop())
	require.NoError(t, repo.Bootstrap(ctx))

	_, err := repo.Create(ctx, entities.Employee{ID: "EMP1", Name: "Maria", Username: "maria", PasswordHash: "x", Active: true})
	require.NoError(t, err)

	got, err := repo.GetByUsername(ctx, "Maria")
	require.NoError(t, err)
	assert.Equal(t, "EMP1", got.ID)

	require.NoError(t, repo.SetActive(ctx, "EMP1", false))
	at := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.TouchLastLogin(ctx, "EMP1", at))

	got, err = repo.GetByID(ctx, "EMP1")
	require.NoError(t, err)
	assert.False(t, got.Active)
	assert.True(t, got.LastLogin.Equal(at))
}

func TestPaymentAndActivityRepositories(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	payments := NewPaymentSheetRepository(store, zap.NewNop())
	activity := NewActivitySheetRepository(store, zap.NewNop())
	require.NoError(t, payments.Bootstrap(ctx))
	require.NoError(t, activity.Bootstrap(ctx))

	p := entities.Payment{
		ID: "PAY1", CustomerID: "CUST1", Amount: 150, Method: entities.PaymentMethodCard,
		Status: entities.PaymentStatusPending, JobIDs: []string{"JOB1", "JOB2"},
		Date: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	_, err := payments.Create(ctx, p)
	require.NoError(t, err)
	require.NoError(t, payments.UpdateStatus(ctx, "PAY1", entities.PaymentStatusCompleted))

	got, err := payments.GetByID(ctx, "PAY1")
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentStatusCompleted, got.Status)
	assert.Equal(t, []string{"JOB1", "JOB2"}, got.JobIDs)

	require.NoError(t, activity.Append(ctx, entities.Activity{Timestamp: time.Now(), Action: "payment_created", User: "admin"}))
	recs, err := store.Scan(ctx, sheetrow.ActivityTable, nil)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "payment_created", recs[0].Get("Action"))
}
