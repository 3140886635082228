package infrastructure

import (
	"encoding/json"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"connect-skills/domain"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func intPtr(n int) *int { return &n }

func TestUpsertEvaluationCreatesThenOverwrites(t *testing.T) {
	db := testDB(t)
	store := NewEvaluationStore(db)

	breakdown := []domain.CompatibilityResult{{Item: "Q1", Rating: intPtr(4)}}

	first, err := store.UpsertEvaluation(1, 7, 4.0, nil, breakdown)
	require.NoError(t, err)
	assert.Equal(t, 4.0, first.Score)

	resposta := "gostei da vaga"
	second, err := store.UpsertEvaluation(1, 7, 2.5, &resposta, breakdown)
	require.NoError(t, err)

	// Exactly one row per (vaga, candidato), reflecting the second write.
	var count int64
	require.NoError(t, db.Model(&domain.Evaluation{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2.5, second.Score)
	require.NotNil(t, second.Resposta)
	assert.Equal(t, "gostei da vaga", *second.Resposta)
}

func TestUpsertEvaluationDistinctPairs(t *testing.T) {
	db := testDB(t)
	store := NewEvaluationStore(db)

	_, err := store.UpsertEvaluation(1, 7, 4.0, nil, nil)
	require.NoError(t, err)
	_, err = store.UpsertEvaluation(1, 8, 3.0, nil, nil)
	require.NoError(t, err)
	_, err = store.UpsertEvaluation(2, 7, 5.0, nil, nil)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&domain.Evaluation{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestUpsertEvaluationSerializesBreakdown(t *testing.T) {
	db := testDB(t)
	store := NewEvaluationStore(db)

	breakdown := []domain.CompatibilityResult{
		{Item: "Q1", Rating: intPtr(5)},
		{Item: "Q2", Rating: nil},
	}

	stored, err := store.UpsertEvaluation(1, 7, 5.0, nil, breakdown)
	require.NoError(t, err)

	var roundtrip []domain.CompatibilityResult
	require.NoError(t, json.Unmarshal([]byte(stored.Breakdown), &roundtrip))
	assert.Equal(t, breakdown, roundtrip)

	// Already-string breakdowns are stored as-is.
	stored, err = store.UpsertEvaluation(1, 8, 1.0, nil, `[{"item":"Q1","rating":1}]`)
	require.NoError(t, err)
	assert.Equal(t, `[{"item":"Q1","rating":1}]`, stored.Breakdown)
}

func TestListByVagaOrdersByScoreDescending(t *testing.T) {
	db := testDB(t)
	store := NewEvaluationStore(db)

	candidatos := []domain.Candidato{
		{Nome: "Ana", Email: "ana@example.com"},
		{Nome: "Bruno", Email: "bruno@example.com"},
		{Nome: "Clara", Email: "clara@example.com"},
	}
	require.NoError(t, db.Create(&candidatos).Error)

	_, err := store.UpsertEvaluation(1, candidatos[0].ID, 3.0, nil, nil)
	require.NoError(t, err)
	_, err = store.UpsertEvaluation(1, candidatos[1].ID, 4.5, nil, nil)
	require.NoError(t, err)
	_, err = store.UpsertEvaluation(1, candidatos[2].ID, 1.0, nil, nil)
	require.NoError(t, err)
	// Different posting, must not appear.
	_, err = store.UpsertEvaluation(2, candidatos[0].ID, 5.0, nil, nil)
	require.NoError(t, err)

	rows, err := store.ListByVaga(1)
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, "Bruno", rows[0].CandidatoNome)
	assert.Equal(t, "bruno@example.com", rows[0].CandidatoEmail)
	assert.Equal(t, "Ana", rows[1].CandidatoNome)
	assert.Equal(t, "Clara", rows[2].CandidatoNome)
}
