package domain

import "time"

// Candidato holds the minimal identity the ranking view needs. The full
// candidate profile lives in the account subsystem.
type Candidato struct {
	ID        uint   `gorm:"primaryKey"`
	Nome      string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255;not null"`
	CreatedAt time.Time
}

func (Candidato) TableName() string { return "candidatos" }
