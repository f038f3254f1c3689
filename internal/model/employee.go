// Package model provides the persisted entities and transfer shapes shared by
// the employee and team modules. Employees and teams reference each other
// (membership and team lead), so both live in one package.
package model

// Employee represents an employee record.
// Matches the employees table schema.
type Employee struct {
	ID     int64  `gorm:"primaryKey;column:employee_id;autoIncrement"`
	Name   string `gorm:"column:name;not null"`
	TeamID *int64 `gorm:"column:team_id"`

	// Team is the team the employee belongs to, nil when unassigned.
	Team *Team `gorm:"foreignKey:TeamID;references:ID"`
	// TeamsLed are the teams whose recorded lead is this employee.
	TeamsLed []Team `gorm:"foreignKey:TeamLeadID;references:ID"`
}

// TableName specifies the table name for GORM.
func (Employee) TableName() string {
	return "employees"
}
