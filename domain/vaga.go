package domain

import "time"

// Vaga is a job posting. Only the fields the evaluation flow reads are
// modeled here: the operator-authored extra questions and up to 3 linked
// behavioral skills.
type Vaga struct {
	ID              uint   `gorm:"primaryKey"`
	Titulo          string `gorm:"size:255;not null"`
	Descricao       string `gorm:"type:text"`
	ExtraQuestions  string `gorm:"column:extra_questions;type:text"`
	Skills          []VagaSkill
	CreatedAt       time.Time
}

func (Vaga) TableName() string { return "vagas" }

// VagaSkill links a posting to a behavioral skill by name.
type VagaSkill struct {
	ID     uint   `gorm:"primaryKey"`
	VagaID uint   `gorm:"column:vaga_id;not null;index"`
	Nome   string `gorm:"size:255;not null"`
}

func (VagaSkill) TableName() string { return "vaga_skills" }

// SkillNames returns the linked skill names in insertion order.
func (v *Vaga) SkillNames() []string {
	names := make([]string, 0, len(v.Skills))
	for _, s := range v.Skills {
		names = append(names, s.Nome)
	}
	return names
}
