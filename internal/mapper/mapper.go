// Package mapper translates persisted entities into transfer views.
//
// The employee/team object graph is cyclic (membership one way, lead the
// other), so nesting is depth-limited to one level with explicit stripped
// variants instead of visited-set tracking: an employee's team is rendered
// without its member list, and a team's lead and members are rendered without
// their team. All functions are pure and never fail; absent optional fields
// map to absent.
package mapper

import "employee-directory/internal/model"

// EmployeeView maps an employee to its full view, embedding its team one
// level deep.
func EmployeeView(e *model.Employee) *model.EmployeeView {
	if e == nil {
		return nil
	}
	view := &model.EmployeeView{
		ID:   e.ID,
		Name: e.Name,
	}
	if e.Team != nil {
		view.Team = teamRef(e.Team)
	}
	return view
}

// TeamView maps a team to its full view with stripped lead and member views.
func TeamView(t *model.Team) *model.TeamView {
	if t == nil {
		return nil
	}
	view := &model.TeamView{
		ID:        t.ID,
		Name:      t.Name,
		TeamLead:  employeeRef(t.TeamLead),
		Employees: make([]model.EmployeeRef, 0, len(t.Employees)),
	}
	for i := range t.Employees {
		view.Employees = append(view.Employees, *employeeRef(&t.Employees[i]))
	}
	return view
}

// EmployeeViews maps a list of employees element-wise, preserving order.
func EmployeeViews(employees []model.Employee) []model.EmployeeView {
	views := make([]model.EmployeeView, 0, len(employees))
	for i := range employees {
		views = append(views, *EmployeeView(&employees[i]))
	}
	return views
}

// TeamViews maps a list of teams element-wise, preserving order.
func TeamViews(teams []model.Team) []model.TeamView {
	views := make([]model.TeamView, 0, len(teams))
	for i := range teams {
		views = append(views, *TeamView(&teams[i]))
	}
	return views
}

// employeeRef maps an employee to its stripped view without the team field.
func employeeRef(e *model.Employee) *model.EmployeeRef {
	if e == nil {
		return nil
	}
	return &model.EmployeeRef{
		ID:   e.ID,
		Name: e.Name,
	}
}

// teamRef maps a team to its stripped view without the member list.
func teamRef(t *model.Team) *model.TeamRef {
	if t == nil {
		return nil
	}
	return &model.TeamRef{
		ID:       t.ID,
		Name:     t.Name,
		TeamLead: employeeRef(t.TeamLead),
	}
}
