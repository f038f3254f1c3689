// Package repository provides data access layer for the employee module.
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

// Repository defines the interface for employee data access operations.
type Repository interface {
	// FindAll returns every employee with its team reference loaded.
	FindAll(ctx context.Context) ([]model.Employee, error)

	// FindByID finds an employee by id with team and led teams loaded.
	FindByID(ctx context.Context, id int64) (*model.Employee, error)

	// FindAllByIDs returns the employees matching the given ids.
	// Duplicate ids collapse to a single row.
	FindAllByIDs(ctx context.Context, ids []int64) ([]model.Employee, error)

	// Save persists an employee row without touching its associations.
	Save(ctx context.Context, employee *model.Employee) error

	// Delete removes an employee row.
	Delete(ctx context.Context, employee *model.Employee) error

	// AssignTeam points the given employees at a team (nil clears the reference).
	AssignTeam(ctx context.Context, employeeIDs []int64, teamID *int64) error

	// ClearTeam unassigns every employee currently in the given team.
	ClearTeam(ctx context.Context, teamID int64) error

	// Search queries, one per branch of the employee search decision table.
	// All name matches are case-insensitive substring matches.
	SearchByName(ctx context.Context, name string) ([]model.Employee, error)
	SearchInTeamByName(ctx context.Context, name string) ([]model.Employee, error)
	SearchWithoutTeamByName(ctx context.Context, name string) ([]model.Employee, error)
	SearchLeadsInTeamByName(ctx context.Context, name string) ([]model.Employee, error)
	SearchLeadsWithoutTeamByName(ctx context.Context, name string) ([]model.Employee, error)
	SearchByTeamLeadName(ctx context.Context, name string) ([]model.Employee, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new employee repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// containsPattern builds a case-insensitive LIKE pattern for substring search.
func containsPattern(name string) string {
	return "%" + strings.ToLower(name) + "%"
}

func (r *repository) FindAll(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.WithContext(ctx).
		Preload("Team.TeamLead").
		Find(&employees).Error
	if err != nil {
		r.logger.Errorw("employee FindAll failed", "error", err)
		return nil, err
	}
	if employees == nil {
		employees = []model.Employee{}
	}
	return employees, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).
		Preload("Team.TeamLead").
		Preload("TeamsLed").
		First(&employee, "employee_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrEmployeeNotFound
		}
		r.logger.Errorw("employee FindByID failed", "employee_id", id, "error", err)
		return nil, err
	}
	return &employee, nil
}

func (r *repository) FindAllByIDs(ctx context.Context, ids []int64) ([]model.Employee, error) {
	if len(ids) == 0 {
		return []model.Employee{}, nil
	}
	var employees []model.Employee
	err := r.db.WithContext(ctx).
		Where("employee_id IN ?", ids).
		Find(&employees).Error
	if err != nil {
		r.logger.Errorw("employee FindAllByIDs failed", "error", err)
		return nil, err
	}
	return employees, nil
}

func (r *repository) Save(ctx context.Context, employee *model.Employee) error {
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(employee).Error
	if err != nil {
		r.logger.Errorw("employee Save failed", "employee_id", employee.ID, "error", err)
	}
	return err
}

func (r *repository) Delete(ctx context.Context, employee *model.Employee) error {
	err := r.db.WithContext(ctx).
		Delete(&model.Employee{}, "employee_id = ?", employee.ID).Error
	if err != nil {
		r.logger.Errorw("employee Delete failed", "employee_id", employee.ID, "error", err)
	}
	return err
}

func (r *repository) AssignTeam(ctx context.Context, employeeIDs []int64, teamID *int64) error {
	if len(employeeIDs) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("employee_id IN ?", employeeIDs).
		Update("team_id", teamID).Error
	if err != nil {
		r.logger.Errorw("employee AssignTeam failed", "team_id", teamID, "error", err)
	}
	return err
}

func (r *repository) ClearTeam(ctx context.Context, teamID int64) error {
	err := r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("team_id = ?", teamID).
		Update("team_id", nil).Error
	if err != nil {
		r.logger.Errorw("employee ClearTeam failed", "team_id", teamID, "error", err)
	}
	return err
}

func (r *repository) SearchByName(ctx context.Context, name string) ([]model.Employee, error) {
	return r.search(r.db.WithContext(ctx).
		Preload("Team.TeamLead").
		Where("LOWER(employees.name) LIKE ?", containsPattern(name)))
}

func (r *repository) SearchInTeamByName(ctx context.Context, name string) ([]model.Employee, error) {
	return r.search(r.db.WithContext(ctx).
		Preload("Team.TeamLead").
		Where("employees.team_id IS NOT NULL").
		Where("LOWER(employees.name) LIKE ?", containsPattern(name)))
}

func (r *repository) SearchWithoutTeamByName(ctx context.Context, name string) ([]model.Employee, error) {
	return r.search(r.db.WithContext(ctx).
		Preload("Team.TeamLead").
		Where("employees.team_id IS NULL").
		Where("LOWER(employees.name) LIKE ?", containsPattern(name)))
}

// SearchLeadsInTeamByName finds employees leading at least one team who are
// themselves assigned to a team, matched on their own name.
func (r *repository) SearchLeadsInTeamByName(ctx context.Context, name string) ([]model.Employee, error) {
	return r.search(r.db.WithContext(ctx).
		Preload("Team.TeamLead").
		Distinct("employees.*").
		Joins("JOIN teams ON teams.team_lead_id = employees.employee_id").
		Where("employees.team_id IS NOT NULL").
		Where("LOWER(employees.name) LIKE ?", containsPattern(name)))
}

// SearchLeadsWithoutTeamByName finds employees leading at least one team who
// are not assigned to any team themselves, matched on their own name.
func (r *repository) SearchLeadsWithoutTeamByName(ctx context.Context, name string) ([]model.Employee, error) {
	return r.search(r.db.WithContext(ctx).
		Preload("Team.TeamLead").
		Distinct("employees.*").
		Joins("JOIN teams ON teams.team_lead_id = employees.employee_id").
		Where("employees.team_id IS NULL").
		Where("LOWER(employees.name) LIKE ?", containsPattern(name)))
}

// SearchByTeamLeadName finds employees whose own team's lead name matches.
func (r *repository) SearchByTeamLeadName(ctx context.Context, name string) ([]model.Employee, error) {
	return r.search(r.db.WithContext(ctx).
		Preload("Team.TeamLead").
		Joins("JOIN teams ON employees.team_id = teams.team_id").
		Joins("JOIN employees leads ON teams.team_lead_id = leads.employee_id").
		Where("LOWER(leads.name) LIKE ?", containsPattern(name)))
}

func (r *repository) search(query *gorm.DB) ([]model.Employee, error) {
	var employees []model.Employee
	if err := query.Find(&employees).Error; err != nil {
		r.logger.Errorw("employee search failed", "error", err)
		return nil, err
	}
	if employees == nil {
		employees = []model.Employee{}
	}
	return employees, nil
}
