package infrastructure

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"connect-skills/domain"
)

// EvaluationStore persists compatibility evaluations. All writes go
// through UpsertEvaluation; the (vaga_id, candidato_id) unique index is
// what enforces the one-row-per-pair invariant, not application checks.
type EvaluationStore struct {
	DB *gorm.DB
}

func NewEvaluationStore(db *gorm.DB) *EvaluationStore {
	return &EvaluationStore{DB: db}
}

// UpsertEvaluation creates or overwrites the evaluation for a
// (posting, candidate) pair. Breakdown is serialized to JSON when it is
// not already a string. Concurrent submissions for the same pair race
// with last-write-wins semantics.
func (s *EvaluationStore) UpsertEvaluation(vagaID, candidatoID uint, score float64, resposta *string, breakdown any) (*domain.Evaluation, error) {
	serialized, err := serializeBreakdown(breakdown)
	if err != nil {
		return nil, fmt.Errorf("serialize breakdown: %w", err)
	}

	eval := domain.Evaluation{
		VagaID:      vagaID,
		CandidatoID: candidatoID,
		Score:       score,
		Resposta:    resposta,
		Breakdown:   serialized,
	}

	err = s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "vaga_id"}, {Name: "candidato_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"score":      score,
			"resposta":   resposta,
			"breakdown":  serialized,
			"updated_at": time.Now(),
		}),
	}).Create(&eval).Error
	if err != nil {
		return nil, fmt.Errorf("upsert evaluation: %w", err)
	}

	// Re-read so the caller always sees the stored row, including the id
	// of a pre-existing record that was just overwritten.
	var stored domain.Evaluation
	if err := s.DB.Where("vaga_id = ? AND candidato_id = ?", vagaID, candidatoID).First(&stored).Error; err != nil {
		return nil, fmt.Errorf("load evaluation after upsert: %w", err)
	}
	return &stored, nil
}

// ListByVaga returns a posting's evaluations ordered by score descending,
// joined with the candidate name/email for display.
func (s *EvaluationStore) ListByVaga(vagaID uint) ([]domain.RankedEvaluation, error) {
	var rows []domain.RankedEvaluation
	err := s.DB.Table("avaliacoes").
		Select("avaliacoes.*, candidatos.nome AS candidato_nome, candidatos.email AS candidato_email").
		Joins("JOIN candidatos ON candidatos.id = avaliacoes.candidato_id").
		Where("avaliacoes.vaga_id = ?", vagaID).
		Order("avaliacoes.score DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	return rows, nil
}

func serializeBreakdown(breakdown any) (string, error) {
	switch v := breakdown.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}
