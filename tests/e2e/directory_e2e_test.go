//go:build e2e
// +build e2e

package e2e

import (
	"net/http"
	"strings"
)

func (s *E2ETestSuite) TestEmployeeLifecycle() {
	resp, ann := s.createEmployee(employeeReq("Ann", nil))
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	s.Require().NotNil(ann)
	s.Nil(ann.Team)

	resp, core := s.createTeam(teamReq("Core", nil, nil))
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	resp, _ = s.doRequest("PUT", "/employees/"+itoa(ann.ID)+"/update",
		strings.NewReader(`{"name":"Anna","teamId":`+itoa(core.ID)+`}`))
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	resp, updated := s.getEmployee(ann.ID)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal("Anna", updated.Name)
	s.Require().NotNil(updated.Team)
	s.Equal("Core", updated.Team.Name)

	resp, _ = s.doRequest("DELETE", "/employees/"+itoa(ann.ID), nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	resp, body := s.doRequest("GET", "/employees/"+itoa(ann.ID), nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	code, message := s.parseErrorResponse(body)
	s.Equal("NOT_FOUND", code)
	s.Equal("Employee with given id not found!", message)
}

func (s *E2ETestSuite) TestTeamMembershipFlow() {
	_, bob := s.createEmployee(employeeReq("Bob", nil))
	_, ann := s.createEmployee(employeeReq("Ann", nil))
	s.Require().NotNil(bob)
	s.Require().NotNil(ann)

	resp, core := s.createTeam(teamReq("Core", &bob.ID, []int64{bob.ID, ann.ID}))
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	s.Require().NotNil(core.TeamLead)
	s.Equal("Bob", core.TeamLead.Name)
	s.Len(core.Employees, 2)

	// Both employees now reference the team
	_, annView := s.getEmployee(ann.ID)
	s.Require().NotNil(annView.Team)
	s.Equal(core.ID, annView.Team.ID)

	// Deleting the team frees its members
	resp, _ = s.doRequest("DELETE", "/teams/"+itoa(core.ID), nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	_, annView = s.getEmployee(ann.ID)
	s.Nil(annView.Team)
}

func (s *E2ETestSuite) TestTeamNameUniqueness() {
	resp, _ := s.createTeam(teamReq("Core", nil, nil))
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	resp, body := s.doRequest("POST", "/teams/create", strings.NewReader(`{"name":"CORE"}`))
	s.Equal(http.StatusConflict, resp.StatusCode)
	code, message := s.parseErrorResponse(body)
	s.Equal("CONFLICT", code)
	s.Equal("Team with given name already exists!", message)
}

func (s *E2ETestSuite) TestDeletedLeadClearsTeams() {
	_, bob := s.createEmployee(employeeReq("Bob", nil))
	s.Require().NotNil(bob)
	_, core := s.createTeam(teamReq("Core", &bob.ID, nil))
	s.Require().NotNil(core)

	resp, _ := s.doRequest("DELETE", "/employees/"+itoa(bob.ID), nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	resp, team := s.getTeam(core.ID)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Nil(team.TeamLead)
}

func (s *E2ETestSuite) TestSearchFilters() {
	_, bob := s.createEmployee(employeeReq("Bob", nil))
	_, carol := s.createEmployee(employeeReq("Carol", nil))
	s.createEmployee(employeeReq("Dave", nil))

	_, core := s.createTeam(teamReq("Core", &bob.ID, []int64{bob.ID}))
	s.createEmployee(employeeReq("Ann", &core.ID))
	s.createTeam(teamReq("Infra", &carol.ID, nil))

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"everyone", "", []string{"Bob", "Carol", "Dave", "Ann"}},
		{"in a team", "?inATeam=true", []string{"Bob", "Ann"}},
		{"without a team", "?inATeam=false", []string{"Carol", "Dave"}},
		{"leads in a team", "?teamLeadsOnly=true&inATeam=true", []string{"Bob"}},
		{"leads without a team", "?teamLeadsOnly=true&inATeam=false", []string{"Carol"}},
		{"members by lead name", "?teamLeadsOnly=true&name=bob", []string{"Bob", "Ann"}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			resp, views := s.searchEmployees(tt.query)
			s.Require().Equal(http.StatusOK, resp.StatusCode)
			got := make([]string, 0, len(views))
			for i := range views {
				got = append(got, views[i].Name)
			}
			s.ElementsMatch(tt.expected, got)
		})
	}
}

func (s *E2ETestSuite) TestMissingMembersRollBackTeamCreation() {
	_, ann := s.createEmployee(employeeReq("Ann", nil))
	s.Require().NotNil(ann)

	resp, body := s.doRequest("POST", "/teams/create",
		strings.NewReader(`{"name":"Core","employeeIds":[`+itoa(ann.ID)+`,9999]}`))
	s.Equal(http.StatusNotFound, resp.StatusCode)
	_, message := s.parseErrorResponse(body)
	s.Equal("Some employees not found!", message)

	// Nothing was persisted
	resp, teams := s.doRequest("GET", "/teams/", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal("[]", strings.TrimSpace(string(teams)))

	_, annView := s.getEmployee(ann.ID)
	s.Nil(annView.Team)
}
