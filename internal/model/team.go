package model

// Team represents a team record.
// Matches the teams table schema. Team names are unique case-insensitively;
// the service layer enforces this and the migration adds a unique index on
// lower(name) as a backstop against concurrent creates.
type Team struct {
	ID         int64  `gorm:"primaryKey;column:team_id;autoIncrement"`
	Name       string `gorm:"column:name;not null"`
	TeamLeadID *int64 `gorm:"column:team_lead_id"`

	// TeamLead need not be a member of the team.
	TeamLead *Employee `gorm:"foreignKey:TeamLeadID;references:ID"`
	// Employees are the members, derived from employees.team_id.
	Employees []Employee `gorm:"foreignKey:TeamID;references:ID"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}
