package model

import "time"

// PhoneModel is the GORM-specific struct for the 'phones' table.
type PhoneModel struct {
	ID         int64      `gorm:"primaryKey;autoIncrement"`
	Name       string     `gorm:"type:varchar(255);not null;uniqueIndex:ux_phone_name"`
	Brand      string     `gorm:"type:varchar(255);not null"`
	Device     string     `gorm:"type:varchar(255);not null"`
	BookedOn   *time.Time `gorm:"column:booked_on"`
	BookedByID *int64     `gorm:"column:booked_by_id;index"`
}

// TableName explicitly sets the table name for GORM.
func (PhoneModel) TableName() string {
	return "phones"
}
