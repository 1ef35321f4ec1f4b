package usecase

import (
	"context"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase/interfaces"
)

const upcomingJobsLimit = 5

type DashboardStats struct {
	ActiveCustomers int
	JobsToday       int
	CompletedToday  int
	PendingQuotes   int
	RevenueToday    float64
	RevenueMonth    float64
	ActiveEmployees int
	UpcomingJobs    []entities.Job
}

type IDashboardUseCase interface {
	Stats(ctx context.Context) (DashboardStats, error)
}

type DashboardUseCase struct {
	customers interfaces.ICustomerRepository
	employees interfaces.IEmployeeRepository
	jobs      interfaces.IJobRepository
	payments  interfaces.IPaymentRepository
	quotes    interfaces.IQuoteRepository
	now       func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(customers interfaces.ICustomerRepository, employees interfaces.IEmployeeRepository, jobs interfaces.IJobRepository, payments interfaces.IPaymentRepository, quotes interfaces.IQuoteRepository) *DashboardUseCase {
	return &DashboardUseCase{
		customers: customers,
		employees: employees,
		jobs:      jobs,
		payments:  payments,
		quotes:    quotes,
		now:       time.Now,
	}
}

func (u *DashboardUseCase) Stats(ctx context.Context) (DashboardStats, error) {
	var s DashboardStats
	now := u.now()
	today := now.Format(entities.DateLayout)
	month := now.Format("2006-01")

	customers, err := u.customers.List(ctx)
	if err != nil {
		return s, err
	}
	for _, c := range customers {
		if c.Status == entities.CustomerStatusActive {
			s.ActiveCustomers++
		}
	}

	employees, err := u.employees.List(ctx)
	if err != nil {
		return s, err
	}
	for _, e := range employees {
		if e.Active {
			s.ActiveEmployees++
		}
	}

	jobs, err := u.jobs.List(ctx)
	if err != nil {
		return s, err
	}
	sortJobs(jobs)
	for _, j := range jobs {
		key := j.DateKey()
		if key == today && j.Status != entities.JobStatusCancelled {
			s.JobsToday++
			if j.Completed {
				s.CompletedToday++
			}
		}
		if key >= today && j.Status == entities.JobStatusScheduled && len(s.UpcomingJobs) < upcomingJobsLimit {
			s.UpcomingJobs = append(s.UpcomingJobs, j)
		}
	}

	payments, err := u.payments.List(ctx)
	if err != nil {
		return s, err
	}
	for _, p := range payments {
		if p.Status != entities.PaymentStatusCompleted {
			continue
		}
		day := p.Date.Format(entities.DateLayout)
		if day == today {
			s.RevenueToday += p.Amount
		}
		if day[:7] == month {
			s.RevenueMonth += p.Amount
		}
	}

	quotes, err := u.quotes.List(ctx)
	if err != nil {
		return s, err
	}
	for _, q := range quotes {
		if q.Status == entities.QuoteStatusPending {
			s.PendingQuotes++
		}
	}
	return s, nil
}
