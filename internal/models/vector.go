package models

import "time"

type Vector struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	RunID   string `gorm:"type:uuid;index;not null" json:"run_id"`
	Case    string `gorm:"column:scenario;not null;size:1" json:"case"`
	Label   string `gorm:"not null" json:"label"`
	Index   int    `gorm:"column:idx;not null" json:"index"`
	Mode    string `gorm:"not null" json:"mode"`
	KeyBits int    `gorm:"not null" json:"key_bits"`

	KeyHex        string  `gorm:"not null" json:"key"`
	IVHex         *string `json:"iv,omitempty"`
	PlaintextHex  string  `gorm:"not null" json:"plaintext"`
	CiphertextHex string  `gorm:"not null" json:"ciphertext"`

	// derivation parameters of the scenario (hashes, prefixes, segment size)
	Params JSONB `gorm:"type:jsonb" json:"params"`

	CreatedAt time.Time `json:"created_at"`
}

func (Vector) TableName() string { return "vectors" }
