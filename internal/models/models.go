package models

import "time"

// Run is one generation pass: the vectors it produced and where it came from.
type Run struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Source    string    `gorm:"not null;size:16" json:"source"` // cli or http
	Format    string    `gorm:"not null;size:8" json:"format"`
	Count     int       `gorm:"not null;default:1" json:"count"`
	Vectors   []Vector  `gorm:"constraint:OnDelete:CASCADE" json:"vectors,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
