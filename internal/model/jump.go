package model

import "time"

// Jump variants. MAX is a maximum approach jump, CMJ a counter movement jump.
const (
	VariantMax = "MAX"
	VariantCMJ = "CMJ"
)

// JumpRecord maps a single measured jump. Height is the computed jump height
// in meters and Weight the body weight in kilograms; unit conversion happens
// at read time, never here.
type JumpRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID  string  `gorm:"type:varchar(36);index;not null" json:"user_id"`
	Variant string  `gorm:"type:varchar(3);not null" json:"variant"`
	Height  float64 `gorm:"not null" json:"height"`
	Weight  float64 `gorm:"not null" json:"weight"`
	Note    *string `gorm:"type:text" json:"note,omitempty"`
}

// TableName pins the table name.
func (JumpRecord) TableName() string {
	return "jump_records"
}
