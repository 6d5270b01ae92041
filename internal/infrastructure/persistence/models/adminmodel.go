package models

import (
	"time"

	"gorm.io/datatypes"

	"storeops/internal/shared/constants"
)

// AdminModel is the persistence shape of an admin authorization record.
// Permissions holds the optional custom grant list as a JSON array; NULL
// or an empty array both mean "no override configured".
type AdminModel struct {
	ID          uint           `gorm:"primarykey"`
	SID         string         `gorm:"column:sid;uniqueIndex;not null;size:32"`
	AuthID      string         `gorm:"uniqueIndex;not null;size:64"`
	Email       string         `gorm:"uniqueIndex;not null;size:255"`
	Name        string         `gorm:"not null;size:100"`
	Role        string         `gorm:"not null;size:32;index"`
	Permissions datatypes.JSON `gorm:"type:json"`
	IsActive    bool           `gorm:"not null;default:true;index"`
	CreatedBy   string         `gorm:"size:32"`
	LastLoginAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (AdminModel) TableName() string {
	return constants.TableAdmins
}
