// Package repository provides data access layer for the team module.
package repository

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"employee-directory/internal/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// FindAll returns every team with lead and members loaded.
	FindAll(ctx context.Context) ([]model.Team, error)

	// FindByID finds a team by id with lead and members loaded.
	FindByID(ctx context.Context, id int64) (*model.Team, error)

	// FindByNameIgnoreCase finds a team whose name matches case-insensitively.
	// Returns nil without error when no such team exists.
	FindByNameIgnoreCase(ctx context.Context, name string) (*model.Team, error)

	// Save persists a team row without touching its associations.
	Save(ctx context.Context, team *model.Team) error

	// Delete removes a team row.
	Delete(ctx context.Context, team *model.Team) error

	// ClearLead clears the lead reference on every team led by the employee.
	ClearLead(ctx context.Context, employeeID int64) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) FindAll(ctx context.Context) ([]model.Team, error) {
	var teams []model.Team
	err := r.db.WithContext(ctx).
		Preload("TeamLead").
		Preload("Employees").
		Find(&teams).Error
	if err != nil {
		r.logger.Errorw("team FindAll failed", "error", err)
		return nil, err
	}
	if teams == nil {
		teams = []model.Team{}
	}
	return teams, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).
		Preload("TeamLead").
		Preload("Employees").
		First(&team, "team_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrTeamNotFound
		}
		r.logger.Errorw("team FindByID failed", "team_id", id, "error", err)
		return nil, err
	}
	return &team, nil
}

func (r *repository) FindByNameIgnoreCase(ctx context.Context, name string) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("team FindByNameIgnoreCase failed", "error", err)
		return nil, err
	}
	return &team, nil
}

func (r *repository) Save(ctx context.Context, team *model.Team) error {
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(team).Error
	if err != nil {
		r.logger.Errorw("team Save failed", "team_id", team.ID, "error", err)
	}
	return err
}

func (r *repository) Delete(ctx context.Context, team *model.Team) error {
	err := r.db.WithContext(ctx).
		Delete(&model.Team{}, "team_id = ?", team.ID).Error
	if err != nil {
		r.logger.Errorw("team Delete failed", "team_id", team.ID, "error", err)
	}
	return err
}

func (r *repository) ClearLead(ctx context.Context, employeeID int64) error {
	err := r.db.WithContext(ctx).
		Model(&model.Team{}).
		Where("team_lead_id = ?", employeeID).
		Update("team_lead_id", nil).Error
	if err != nil {
		r.logger.Errorw("team ClearLead failed", "employee_id", employeeID, "error", err)
	}
	return err
}
