package usecase

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/apperr"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/logger"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// JobInput is the admin job form. EmployeeID may be empty for an unassigned job.
type JobInput struct {
	CustomerID  string
	EmployeeID  string
	Date        time.Time
	Time        string
	Address     string
	ServiceType string
	Price       float64
	Notes       string
	Status      entities.JobStatus
}

type IJobUseCase interface {
	List(ctx context.Context) ([]entities.Job, error)
	ListForDate(ctx context.Context, date time.Time) ([]entities.Job, error)
	ListForEmployee(ctx context.Context, employeeID string, date time.Time) ([]entities.Job, error)
	Get(ctx context.Context, id string) (entities.Job, error)
	Create(ctx context.Context, in JobInput) (entities.Job, error)
	Update(ctx context.Context, id string, in JobInput) (entities.Job, error)
	CheckIn(ctx context.Context, id, employeeID string) (entities.Job, error)
	Complete(ctx context.Context, id, employeeID, notes, photo string) (entities.Job, error)
	Cancel(ctx context.Context, id string) error
}

type JobUseCase struct {
	repo      interfaces.IJobRepository
	customers interfaces.ICustomerRepository
	employees interfaces.IEmployeeRepository
	now       func() time.Time
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(repo interfaces.IJobRepository, customers interfaces.ICustomerRepository, employees interfaces.IEmployeeRepository) *JobUseCase {
	return &JobUseCase{
		repo:      repo,
		customers: customers,
		employees: employees,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// List returns all jobs ordered by date and time.
func (u *JobUseCase) List(ctx context.Context) ([]entities.Job, error) {
	jobs, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortJobs(jobs)
	return jobs, nil
}

func (u *JobUseCase) ListForDate(ctx context.Context, date time.Time) ([]entities.Job, error) {
	jobs, err := u.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	sortJobs(jobs)
	return jobs, nil
}

func (u *JobUseCase) ListForEmployee(ctx context.Context, employeeID string, date time.Time) ([]entities.Job, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return nil, ErrInvalidID
	}
	var (
		jobs []entities.Job
		err  error
	)
	if date.IsZero() {
		jobs, err = u.repo.List(ctx)
	} else {
		jobs, err = u.repo.ListByDate(ctx, date)
	}
	if err != nil {
		return nil, err
	}
	out := make([]entities.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.EmployeeID == employeeID && j.Status != entities.JobStatusCancelled {
			out = append(out, j)
		}
	}
	sortJobs(out)
	return out, nil
}

func (u *JobUseCase) Get(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidID
	}
	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *JobUseCase) Create(ctx context.Context, in JobInput) (entities.Job, error) {
	if err := validateJob(in); err != nil {
		return entities.Job{}, err
	}
	j := entities.Job{Status: entities.JobStatusScheduled}
	if err := u.apply(ctx, &j, in); err != nil {
		return entities.Job{}, err
	}
	j.ID = entities.NewID(entities.PrefixJob, u.now())
	created, err := u.repo.Create(ctx, j)
	if err != nil {
		return entities.Job{}, err
	}
	logger.FromContext(ctx).Info("[job][usecase] created",
		zap.String("job_id", created.ID), zap.String("customer_id", created.CustomerID), zap.String("date", created.DateKey()))
	return created, nil
}

func (u *JobUseCase) Update(ctx context.Context, id string, in JobInput) (entities.Job, error) {
	j, err := u.Get(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if err := validateJob(in); err != nil {
		return entities.Job{}, err
	}
	if err := u.apply(ctx, &j, in); err != nil {
		return entities.Job{}, err
	}
	if in.Status != "" {
		j.Status = in.Status
		j.Completed = in.Status == entities.JobStatusCompleted
	}
	updated, err := u.repo.Update(ctx, j)
	if err != nil {
		return entities.Job{}, notFoundAs(err, ErrJobNotFound)
	}
	return updated, nil
}

// apply resolves the references by ID and copies the display names.
func (u *JobUseCase) apply(ctx context.Context, j *entities.Job, in JobInput) error {
	customer, err := u.customers.GetByID(ctx, strings.TrimSpace(in.CustomerID))
	if err != nil {
		return err
	}
	if customer.ID == "" {
		return ErrCustomerNotFound
	}
	j.CustomerID = customer.ID
	j.CustomerName = customer.Name

	j.EmployeeID, j.EmployeeName = "", ""
	if id := strings.TrimSpace(in.EmployeeID); id != "" {
		employee, err := u.employees.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if employee.ID == "" {
			return ErrEmployeeNotFound
		}
		j.EmployeeID = employee.ID
		j.EmployeeName = employee.Name
	}

	j.Date = in.Date
	j.Time = strings.TrimSpace(in.Time)
	j.Address = strings.TrimSpace(in.Address)
	if j.Address == "" {
		j.Address = customer.Address
	}
	j.ServiceType = in.ServiceType
	j.Price = in.Price
	j.Notes = in.Notes
	return nil
}

// CheckIn starts a job. A non-empty employeeID must match the assignment.
func (u *JobUseCase) CheckIn(ctx context.Context, id, employeeID string) (entities.Job, error) {
	j, err := u.ownedOpenJob(ctx, id, employeeID)
	if err != nil {
		return entities.Job{}, err
	}
	j.Status = entities.JobStatusInProgress
	j.CheckInTime = u.now()
	updated, err := u.repo.Update(ctx, j)
	if err != nil {
		return entities.Job{}, notFoundAs(err, ErrJobNotFound)
	}
	logger.FromContext(ctx).Info("[job][usecase] checked in", zap.String("job_id", j.ID), zap.String("employee_id", employeeID))
	return updated, nil
}

// Complete closes a job with optional notes and a stored photo reference.
func (u *JobUseCase) Complete(ctx context.Context, id, employeeID, notes, photo string) (entities.Job, error) {
	j, err := u.ownedOpenJob(ctx, id, employeeID)
	if err != nil {
		return entities.Job{}, err
	}
	now := u.now()
	if j.CheckInTime.IsZero() {
		j.CheckInTime = now
	}
	j.CheckOutTime = now
	j.Status = entities.JobStatusCompleted
	j.Completed = true
	if notes = strings.TrimSpace(notes); notes != "" {
		if j.Notes != "" {
			j.Notes += "\n"
		}
		j.Notes += notes
	}
	if photo != "" {
		if j.Photos != "" {
			j.Photos += ","
		}
		j.Photos += photo
	}
	updated, err := u.repo.Update(ctx, j)
	if err != nil {
		return entities.Job{}, notFoundAs(err, ErrJobNotFound)
	}
	logger.FromContext(ctx).Info("[job][usecase] completed", zap.String("job_id", j.ID), zap.Bool("photo", photo != ""))
	return updated, nil
}

// Cancel is the soft delete for jobs.
func (u *JobUseCase) Cancel(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	if err := u.repo.UpdateStatus(ctx, id, entities.JobStatusCancelled); err != nil {
		return notFoundAs(err, ErrJobNotFound)
	}
	return nil
}

func (u *JobUseCase) ownedOpenJob(ctx context.Context, id, employeeID string) (entities.Job, error) {
	j, err := u.Get(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if employeeID != "" && j.EmployeeID != employeeID {
		return entities.Job{}, ErrJobNotAssigned
	}
	if j.Status == entities.JobStatusCompleted || j.Status == entities.JobStatusCancelled {
		return entities.Job{}, ErrJobClosed
	}
	return j, nil
}

func validateJob(in JobInput) error {
	if strings.TrimSpace(in.CustomerID) == "" {
		return apperr.NewValidationError("customer_id", "is required")
	}
	if in.Date.IsZero() {
		return apperr.NewValidationError("date", "is required")
	}
	if in.Price < 0 {
		return apperr.NewValidationError("price", "cannot be negative")
	}
	if in.Status != "" {
		if _, err := entities.ParseJobStatus(string(in.Status)); err != nil {
			return err
		}
	}
	return nil
}

func sortJobs(jobs []entities.Job) {
	slices.SortStableFunc(jobs, func(a, b entities.Job) int {
		if c := cmp.Compare(a.DateKey(), b.DateKey()); c != 0 {
			return c
		}
		return cmp.Compare(a.Time, b.Time)
	})
}
