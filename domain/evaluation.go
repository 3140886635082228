package domain

import "time"

// Evaluation stores the compatibility result for one candidate on one
// posting. The compound unique index gives upsert semantics: at most one
// row per (vaga_id, candidato_id), last write wins.
type Evaluation struct {
	ID          uint    `gorm:"primaryKey"`
	VagaID      uint    `gorm:"column:vaga_id;not null;uniqueIndex:idx_vaga_candidato"`
	CandidatoID uint    `gorm:"column:candidato_id;not null;uniqueIndex:idx_vaga_candidato"`
	Score       float64 `gorm:"not null"`
	Resposta    *string `gorm:"type:text"` // pointer so it can be NULL
	Breakdown   string  `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Evaluation) TableName() string { return "avaliacoes" }

// RankedEvaluation is an Evaluation joined with the candidate identity for
// the per-posting ranking view.
type RankedEvaluation struct {
	Evaluation
	CandidatoNome  string `gorm:"column:candidato_nome"`
	CandidatoEmail string `gorm:"column:candidato_email"`
}
