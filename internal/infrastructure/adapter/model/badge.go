package model

// Badge is the database model for the shared badge catalog. Requirement
// columns are empty for purchase-only badges; price is zero for earn-only
// badges.
type Badge struct {
	ID                  string `gorm:"primaryKey;size:64"`
	Name                string `gorm:"not null;size:255"`
	Description         string `gorm:"not null;type:text"`
	Price               int64  `gorm:"not null;default:0"`
	RequirementType     string `gorm:"size:32"`
	RequirementCategory string `gorm:"size:32"`
	RequirementValue    int    `gorm:"not null;default:0"`
	Icon                string `gorm:"size:64"`
	Color               string `gorm:"size:64"`
}

// TableName specifies the table name for Badge
func (Badge) TableName() string {
	return "badges"
}
