package model

import "time"

type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Username  string    `gorm:"type:varchar(20);not null;unique" json:"username"`
	Password  string    `gorm:"type:varchar(80);not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// TipToeHeight is the user's standing reach offset in meters, kept as a
	// per-user calibration constant for the jump pipeline.
	TipToeHeight float64 `gorm:"not null" json:"tip_toe_height"`
}
