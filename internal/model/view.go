package model

// EmployeeRef is a stripped employee view with the team reference omitted.
// Used inside TeamView and TeamRef to break the employee/team cycle.
type EmployeeRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TeamRef is a stripped team view with no member list.
// Used inside EmployeeView to break the cycle the other way.
type TeamRef struct {
	ID       int64        `json:"id"`
	Name     string       `json:"name"`
	TeamLead *EmployeeRef `json:"teamLead,omitempty"`
}

// EmployeeView is the outward-facing employee representation.
type EmployeeView struct {
	ID   int64    `json:"id"`
	Name string   `json:"name"`
	Team *TeamRef `json:"team,omitempty"`
}

// TeamView is the outward-facing team representation. TeamLead serializes as
// an explicit null when absent and Employees is always an array.
type TeamView struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	TeamLead  *EmployeeRef  `json:"teamLead"`
	Employees []EmployeeRef `json:"employees"`
}
