package model

// CreateEmployeeRequest is the body of employee create and update requests.
// TeamID is a full replace: nil clears the team reference.
type CreateEmployeeRequest struct {
	Name   string `json:"name"`
	TeamID *int64 `json:"teamId"`
}

// CreateTeamRequest is the body of team create and update requests.
// TeamLeadID and EmployeeIDs are full replaces, not merges.
type CreateTeamRequest struct {
	Name        string  `json:"name"`
	TeamLeadID  *int64  `json:"teamLeadId"`
	EmployeeIDs []int64 `json:"employeeIds"`
}

// SearchEmployeesQuery holds the optional employee search filters.
// Nil filters do not constrain the result set.
type SearchEmployeesQuery struct {
	InATeam       *bool
	TeamLeadsOnly *bool
	Name          string
}
