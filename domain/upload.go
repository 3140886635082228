package domain

import "time"

// Upload is a candidate attachment (resume, portfolio) with its extracted
// text. The text can be referenced as answer context on evaluation
// submission.
type Upload struct {
	ID          uint   `gorm:"primaryKey"`
	CandidatoID uint   `gorm:"column:candidato_id;not null;index"`
	FileName    string `gorm:"size:255"`
	Texto       string `gorm:"type:longtext;not null"`
	CreatedAt   time.Time
}

func (Upload) TableName() string { return "uploads" }
