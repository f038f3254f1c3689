// Package service provides business logic layer for the employee module.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"employee-directory/internal/apierrors"
	"employee-directory/internal/employee/repository"
	"employee-directory/internal/mapper"
	"employee-directory/internal/model"
	teamRepository "employee-directory/internal/team/repository"
)

// Service defines the interface for employee business logic operations.
type Service interface {
	// GetAll returns all employees.
	GetAll(ctx context.Context) ([]model.EmployeeView, error)

	// GetByID returns an employee by id.
	GetByID(ctx context.Context, id int64) (*model.EmployeeView, error)

	// Create creates a new employee, optionally assigned to a team.
	Create(ctx context.Context, req *model.CreateEmployeeRequest) (*model.EmployeeView, error)

	// Update replaces an employee's team reference and conditionally its name.
	Update(ctx context.Context, id int64, req *model.CreateEmployeeRequest) (*model.EmployeeView, error)

	// Delete removes an employee, clearing the lead reference on every team
	// the employee leads first.
	Delete(ctx context.Context, id int64) (*model.EmployeeView, error)

	// Search finds employees by the optional in-a-team, team-leads-only and
	// name filters.
	Search(ctx context.Context, query model.SearchEmployeesQuery) ([]model.EmployeeView, error)
}

type service struct {
	repo     repository.Repository
	teamRepo teamRepository.Repository
	db       *gorm.DB
	logger   *zap.SugaredLogger
}

// New creates a new employee service instance.
func New(repo repository.Repository, teamRepo teamRepository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		repo:     repo,
		teamRepo: teamRepo,
		db:       db,
		logger:   logger,
	}
}

func (s *service) GetAll(ctx context.Context) ([]model.EmployeeView, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.EmployeeViews(employees), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*model.EmployeeView, error) {
	employee, err := s.findEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.EmployeeView(employee), nil
}

func (s *service) Create(ctx context.Context, req *model.CreateEmployeeRequest) (*model.EmployeeView, error) {
	teamID, err := s.resolveTeam(ctx, req.TeamID)
	if err != nil {
		return nil, err
	}

	employee := &model.Employee{
		Name:   req.Name,
		TeamID: teamID,
	}
	if err := s.repo.Save(ctx, employee); err != nil {
		return nil, err
	}

	s.logger.Infow("employee created", "employee_id", employee.ID, "team_id", teamID)

	created, err := s.repo.FindByID(ctx, employee.ID)
	if err != nil {
		return nil, err
	}
	return mapper.EmployeeView(created), nil
}

func (s *service) Update(ctx context.Context, id int64, req *model.CreateEmployeeRequest) (*model.EmployeeView, error) {
	employee, err := s.findEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	// Full replace of the team reference, cleared when omitted.
	teamID, err := s.resolveTeam(ctx, req.TeamID)
	if err != nil {
		return nil, err
	}
	employee.TeamID = teamID

	if req.Name != "" {
		employee.Name = req.Name
	}

	if err := s.repo.Save(ctx, employee); err != nil {
		return nil, err
	}

	s.logger.Infow("employee updated", "employee_id", id, "team_id", teamID)

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.EmployeeView(updated), nil
}

func (s *service) Delete(ctx context.Context, id int64) (*model.EmployeeView, error) {
	var view *model.EmployeeView

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)
		txTeamRepo := teamRepository.New(tx, s.logger)

		employee, err := s.findEmployeeWith(ctx, txRepo, id)
		if err != nil {
			return err
		}

		// Snapshot before severing relationships; the returned view reflects
		// state at lookup time.
		view = mapper.EmployeeView(employee)

		if len(employee.TeamsLed) > 0 {
			if err := txTeamRepo.ClearLead(ctx, id); err != nil {
				return err
			}
		}

		return txRepo.Delete(ctx, employee)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("employee deleted", "employee_id", id)
	return view, nil
}

func (s *service) Search(ctx context.Context, query model.SearchEmployeesQuery) ([]model.EmployeeView, error) {
	name := query.Name

	var (
		employees []model.Employee
		err       error
	)
	if query.TeamLeadsOnly != nil && *query.TeamLeadsOnly {
		switch {
		case query.InATeam != nil && *query.InATeam:
			employees, err = s.repo.SearchLeadsInTeamByName(ctx, name)
		case query.InATeam != nil:
			employees, err = s.repo.SearchLeadsWithoutTeamByName(ctx, name)
		default:
			employees, err = s.repo.SearchByTeamLeadName(ctx, name)
		}
	} else {
		switch {
		case query.InATeam != nil && *query.InATeam:
			employees, err = s.repo.SearchInTeamByName(ctx, name)
		case query.InATeam != nil:
			employees, err = s.repo.SearchWithoutTeamByName(ctx, name)
		default:
			employees, err = s.repo.SearchByName(ctx, name)
		}
	}
	if err != nil {
		return nil, err
	}

	return mapper.EmployeeViews(employees), nil
}

// resolveTeam looks up the referenced team and returns its id, nil when no
// reference was supplied.
func (s *service) resolveTeam(ctx context.Context, teamID *int64) (*int64, error) {
	if teamID == nil {
		return nil, nil
	}
	team, err := s.teamRepo.FindByID(ctx, *teamID)
	if err != nil {
		if errors.Is(err, model.ErrTeamNotFound) {
			return nil, apierrors.NotFound("Selected team doesn't exist!")
		}
		return nil, err
	}
	return &team.ID, nil
}

func (s *service) findEmployee(ctx context.Context, id int64) (*model.Employee, error) {
	return s.findEmployeeWith(ctx, s.repo, id)
}

func (s *service) findEmployeeWith(ctx context.Context, repo repository.Repository, id int64) (*model.Employee, error) {
	employee, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrEmployeeNotFound) {
			return nil, apierrors.NotFound("Employee with given id not found!")
		}
		return nil, err
	}
	return employee, nil
}
