package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"employee-directory/internal/apierrors"
	"employee-directory/internal/employee/repository"
	"employee-directory/internal/model"
	teamRepository "employee-directory/internal/team/repository"
)

func setupService(t *testing.T) (Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Team{}, &model.Employee{}))

	logger := zap.NewNop().Sugar()
	svc := New(repository.New(db, logger), teamRepository.New(db, logger), db, logger)
	return svc, db
}

func seedTeam(t *testing.T, db *gorm.DB, name string, leadID *int64) *model.Team {
	team := &model.Team{Name: name, TeamLeadID: leadID}
	require.NoError(t, db.Create(team).Error)
	return team
}

func seedEmployee(t *testing.T, db *gorm.DB, name string, teamID *int64) *model.Employee {
	employee := &model.Employee{Name: name, TeamID: teamID}
	require.NoError(t, db.Create(employee).Error)
	return employee
}

func boolPtr(v bool) *bool { return &v }

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		svc, _ := setupService(t)

		view, err := svc.GetByID(ctx, 42)

		assert.Nil(t, view)
		require.Error(t, err)
		apiErr, ok := apierrors.FromError(err)
		require.True(t, ok)
		assert.Equal(t, apierrors.CodeNotFound, apiErr.Code)
		assert.Equal(t, "Employee with given id not found!", apiErr.Message)
	})

	t.Run("includes team with its lead", func(t *testing.T) {
		svc, db := setupService(t)
		bob := seedEmployee(t, db, "Bob", nil)
		core := seedTeam(t, db, "Core", &bob.ID)
		ann := seedEmployee(t, db, "Ann", &core.ID)

		view, err := svc.GetByID(ctx, ann.ID)

		require.NoError(t, err)
		assert.Equal(t, "Ann", view.Name)
		require.NotNil(t, view.Team)
		assert.Equal(t, "Core", view.Team.Name)
		require.NotNil(t, view.Team.TeamLead)
		assert.Equal(t, "Bob", view.Team.TeamLead.Name)
	})
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("without team", func(t *testing.T) {
		svc, _ := setupService(t)

		view, err := svc.Create(ctx, &model.CreateEmployeeRequest{Name: "Ann"})

		require.NoError(t, err)
		assert.NotZero(t, view.ID)
		assert.Equal(t, "Ann", view.Name)
		assert.Nil(t, view.Team)
	})

	t.Run("with team", func(t *testing.T) {
		svc, db := setupService(t)
		core := seedTeam(t, db, "Core", nil)

		view, err := svc.Create(ctx, &model.CreateEmployeeRequest{Name: "Ann", TeamID: &core.ID})

		require.NoError(t, err)
		require.NotNil(t, view.Team)
		assert.Equal(t, core.ID, view.Team.ID)
	})

	t.Run("unknown team rejected", func(t *testing.T) {
		svc, db := setupService(t)
		missing := int64(99)

		view, err := svc.Create(ctx, &model.CreateEmployeeRequest{Name: "Ann", TeamID: &missing})

		assert.Nil(t, view)
		apiErr, ok := apierrors.FromError(err)
		require.True(t, ok)
		assert.Equal(t, "Selected team doesn't exist!", apiErr.Message)

		var count int64
		db.Model(&model.Employee{}).Count(&count)
		assert.Zero(t, count)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		svc, _ := setupService(t)

		view, err := svc.Update(ctx, 42, &model.CreateEmployeeRequest{Name: "Ann"})

		assert.Nil(t, view)
		apiErr, ok := apierrors.FromError(err)
		require.True(t, ok)
		assert.Equal(t, "Employee with given id not found!", apiErr.Message)
	})

	t.Run("rename and reassign", func(t *testing.T) {
		svc, db := setupService(t)
		core := seedTeam(t, db, "Core", nil)
		infra := seedTeam(t, db, "Infra", nil)
		ann := seedEmployee(t, db, "Ann", &core.ID)

		view, err := svc.Update(ctx, ann.ID, &model.CreateEmployeeRequest{Name: "Anna", TeamID: &infra.ID})

		require.NoError(t, err)
		assert.Equal(t, "Anna", view.Name)
		require.NotNil(t, view.Team)
		assert.Equal(t, "Infra", view.Team.Name)
	})

	t.Run("omitted team clears the assignment", func(t *testing.T) {
		svc, db := setupService(t)
		core := seedTeam(t, db, "Core", nil)
		ann := seedEmployee(t, db, "Ann", &core.ID)

		view, err := svc.Update(ctx, ann.ID, &model.CreateEmployeeRequest{Name: "Ann"})

		require.NoError(t, err)
		assert.Nil(t, view.Team)
	})

	t.Run("empty name keeps the current one", func(t *testing.T) {
		svc, db := setupService(t)
		ann := seedEmployee(t, db, "Ann", nil)

		view, err := svc.Update(ctx, ann.ID, &model.CreateEmployeeRequest{})

		require.NoError(t, err)
		assert.Equal(t, "Ann", view.Name)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		svc, _ := setupService(t)

		view, err := svc.Delete(ctx, 42)

		assert.Nil(t, view)
		apiErr, ok := apierrors.FromError(err)
		require.True(t, ok)
		assert.Equal(t, "Employee with given id not found!", apiErr.Message)
	})

	t.Run("returns the pre-delete state", func(t *testing.T) {
		svc, db := setupService(t)
		core := seedTeam(t, db, "Core", nil)
		ann := seedEmployee(t, db, "Ann", &core.ID)

		view, err := svc.Delete(ctx, ann.ID)

		require.NoError(t, err)
		assert.Equal(t, "Ann", view.Name)
		require.NotNil(t, view.Team)
		assert.Equal(t, "Core", view.Team.Name)

		var count int64
		db.Model(&model.Employee{}).Count(&count)
		assert.Zero(t, count)
	})

	t.Run("led teams lose their lead", func(t *testing.T) {
		svc, db := setupService(t)
		bob := seedEmployee(t, db, "Bob", nil)
		core := seedTeam(t, db, "Core", &bob.ID)

		_, err := svc.Delete(ctx, bob.ID)

		require.NoError(t, err)
		var stored model.Team
		require.NoError(t, db.First(&stored, "team_id = ?", core.ID).Error)
		assert.Nil(t, stored.TeamLeadID)
	})
}

func TestService_Search(t *testing.T) {
	ctx := context.Background()

	// Core led by Bob with members Bob and Ann; Infra led by Carol who has
	// no team herself; Dave unassigned.
	setup := func(t *testing.T) Service {
		svc, db := setupService(t)
		bob := seedEmployee(t, db, "Bob", nil)
		carol := seedEmployee(t, db, "Carol", nil)
		core := seedTeam(t, db, "Core", &bob.ID)
		seedTeam(t, db, "Infra", &carol.ID)
		seedEmployee(t, db, "Ann", &core.ID)
		seedEmployee(t, db, "Dave", nil)
		require.NoError(t, db.Model(&model.Employee{}).
			Where("employee_id = ?", bob.ID).
			Update("team_id", core.ID).Error)
		return svc
	}

	viewNames := func(views []model.EmployeeView) []string {
		result := make([]string, 0, len(views))
		for i := range views {
			result = append(result, views[i].Name)
		}
		return result
	}

	tests := []struct {
		name     string
		query    model.SearchEmployeesQuery
		expected []string
	}{
		{
			name:     "no filters matches everyone",
			query:    model.SearchEmployeesQuery{},
			expected: []string{"Bob", "Ann", "Carol", "Dave"},
		},
		{
			name:     "name only",
			query:    model.SearchEmployeesQuery{Name: "a"},
			expected: []string{"Ann", "Carol", "Dave"},
		},
		{
			name:     "in a team",
			query:    model.SearchEmployeesQuery{InATeam: boolPtr(true)},
			expected: []string{"Bob", "Ann"},
		},
		{
			name:     "not in a team",
			query:    model.SearchEmployeesQuery{InATeam: boolPtr(false)},
			expected: []string{"Carol", "Dave"},
		},
		{
			name:     "leads in a team",
			query:    model.SearchEmployeesQuery{TeamLeadsOnly: boolPtr(true), InATeam: boolPtr(true)},
			expected: []string{"Bob"},
		},
		{
			name:     "leads without a team",
			query:    model.SearchEmployeesQuery{TeamLeadsOnly: boolPtr(true), InATeam: boolPtr(false)},
			expected: []string{"Carol"},
		},
		{
			name:     "leads only matches through the team's lead name",
			query:    model.SearchEmployeesQuery{TeamLeadsOnly: boolPtr(true), Name: "bob"},
			expected: []string{"Bob", "Ann"},
		},
		{
			name:     "team leads only false behaves as unset",
			query:    model.SearchEmployeesQuery{TeamLeadsOnly: boolPtr(false), InATeam: boolPtr(true)},
			expected: []string{"Bob", "Ann"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := setup(t)

			views, err := svc.Search(ctx, tt.query)

			require.NoError(t, err)
			assert.ElementsMatch(t, tt.expected, viewNames(views))
		})
	}
}
