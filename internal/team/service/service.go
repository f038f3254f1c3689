// Package service provides business logic layer for the team module.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"employee-directory/internal/apierrors"
	employeeRepository "employee-directory/internal/employee/repository"
	"employee-directory/internal/mapper"
	"employee-directory/internal/model"
	"employee-directory/internal/team/repository"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// GetAll returns all teams.
	GetAll(ctx context.Context) ([]model.TeamView, error)

	// GetByID returns a team by id.
	GetByID(ctx context.Context, id int64) (*model.TeamView, error)

	// Create creates a new team with an optional lead and member set, and
	// points every member's team reference at the new team.
	Create(ctx context.Context, req *model.CreateTeamRequest) (*model.TeamView, error)

	// Update replaces a team's lead and member set and conditionally its name.
	Update(ctx context.Context, id int64, req *model.CreateTeamRequest) (*model.TeamView, error)

	// Delete removes a team, unassigning every current member first.
	Delete(ctx context.Context, id int64) (*model.TeamView, error)
}

type service struct {
	repo         repository.Repository
	employeeRepo employeeRepository.Repository
	db           *gorm.DB
	logger       *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, employeeRepo employeeRepository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		repo:         repo,
		employeeRepo: employeeRepo,
		db:           db,
		logger:       logger,
	}
}

func (s *service) GetAll(ctx context.Context) ([]model.TeamView, error) {
	teams, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.TeamViews(teams), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*model.TeamView, error) {
	team, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrTeamNotFound) {
			return nil, apierrors.NotFound("Team not found")
		}
		return nil, err
	}
	return mapper.TeamView(team), nil
}

func (s *service) Create(ctx context.Context, req *model.CreateTeamRequest) (*model.TeamView, error) {
	var view *model.TeamView

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)
		txEmployeeRepo := employeeRepository.New(tx, s.logger)

		leadID, err := resolveLead(ctx, txEmployeeRepo, req.TeamLeadID)
		if err != nil {
			return err
		}

		members, err := resolveMembers(ctx, txEmployeeRepo, req.EmployeeIDs)
		if err != nil {
			return err
		}

		existing, err := txRepo.FindByNameIgnoreCase(ctx, req.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			return apierrors.Conflict("Team with given name already exists!")
		}

		team := &model.Team{
			Name:       req.Name,
			TeamLeadID: leadID,
		}
		if err := txRepo.Save(ctx, team); err != nil {
			return err
		}

		// Switch the resolved employees over to the new team.
		if err := txEmployeeRepo.AssignTeam(ctx, memberIDs(members), &team.ID); err != nil {
			return err
		}

		created, err := txRepo.FindByID(ctx, team.ID)
		if err != nil {
			return err
		}
		view = mapper.TeamView(created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team created", "team_id", view.ID, "name", view.Name)
	return view, nil
}

func (s *service) Update(ctx context.Context, id int64, req *model.CreateTeamRequest) (*model.TeamView, error) {
	var view *model.TeamView

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)
		txEmployeeRepo := employeeRepository.New(tx, s.logger)

		team, err := txRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, model.ErrTeamNotFound) {
				return apierrors.NotFound("Team with given ID doesn't exist!")
			}
			return err
		}

		// The team itself is exempt from the uniqueness check.
		existing, err := txRepo.FindByNameIgnoreCase(ctx, req.Name)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != id {
			return apierrors.Conflict("Team with given name already exists!")
		}

		leadID, err := resolveLead(ctx, txEmployeeRepo, req.TeamLeadID)
		if err != nil {
			return err
		}
		team.TeamLeadID = leadID

		if len(req.EmployeeIDs) > 0 {
			found, err := txEmployeeRepo.FindAllByIDs(ctx, req.EmployeeIDs)
			if err != nil {
				return err
			}
			if err := txEmployeeRepo.AssignTeam(ctx, memberIDs(found), &team.ID); err != nil {
				return err
			}
			// Kept after the reassignment to preserve the original contract;
			// the surrounding transaction rolls the reassignment back.
			if len(found) != len(req.EmployeeIDs) {
				return apierrors.NotFound("Some employees not found!")
			}
		} else {
			// No members supplied: everyone currently in the team is removed.
			if err := txEmployeeRepo.ClearTeam(ctx, id); err != nil {
				return err
			}
		}

		if req.Name != "" {
			team.Name = req.Name
		}

		if err := txRepo.Save(ctx, team); err != nil {
			return err
		}

		updated, err := txRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		view = mapper.TeamView(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team updated", "team_id", id)
	return view, nil
}

func (s *service) Delete(ctx context.Context, id int64) (*model.TeamView, error) {
	var view *model.TeamView

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)
		txEmployeeRepo := employeeRepository.New(tx, s.logger)

		team, err := txRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, model.ErrTeamNotFound) {
				return apierrors.NotFound("Team with given ID doesn't exist!")
			}
			return err
		}

		// Snapshot before unassigning members; the returned view reflects
		// state at lookup time.
		view = mapper.TeamView(team)

		if err := txEmployeeRepo.ClearTeam(ctx, id); err != nil {
			return err
		}

		return txRepo.Delete(ctx, team)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team deleted", "team_id", id)
	return view, nil
}

// resolveLead looks up the referenced team lead and returns its id, nil when
// no lead was supplied.
func resolveLead(ctx context.Context, repo employeeRepository.Repository, leadID *int64) (*int64, error) {
	if leadID == nil {
		return nil, nil
	}
	lead, err := repo.FindByID(ctx, *leadID)
	if err != nil {
		if errors.Is(err, model.ErrEmployeeNotFound) {
			return nil, apierrors.NotFound("Team lead not found!")
		}
		return nil, err
	}
	return &lead.ID, nil
}

// resolveMembers loads the requested member set. A count mismatch against the
// raw id list means some ids are missing or duplicated, both rejected.
func resolveMembers(ctx context.Context, repo employeeRepository.Repository, employeeIDs []int64) ([]model.Employee, error) {
	if len(employeeIDs) == 0 {
		return []model.Employee{}, nil
	}
	found, err := repo.FindAllByIDs(ctx, employeeIDs)
	if err != nil {
		return nil, err
	}
	if len(found) != len(employeeIDs) {
		return nil, apierrors.NotFound("Some employees not found!")
	}
	return found, nil
}

func memberIDs(members []model.Employee) []int64 {
	ids := make([]int64, 0, len(members))
	for i := range members {
		ids = append(ids, members[i].ID)
	}
	return ids
}
