// Package model defines database models for persistence layer.
package model

import "time"

// StateBlobModel represents the state_blobs table in the database.
type StateBlobModel struct {
	Key       string    `gorm:"type:varchar(100);primaryKey"`
	Data      string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the StateBlobModel.
func (StateBlobModel) TableName() string {
	return "state_blobs"
}
