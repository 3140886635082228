package infrastructure

import (
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"connect-skills/domain"
)

func NewMySQLConnection() *gorm.DB {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		logrus.Fatal("DB_DSN is not set in environment")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}

	// Auto migrate schema
	if err := Migrate(db); err != nil {
		logrus.Fatalf("failed to migrate database: %v", err)
	}

	// Seed initial postings + candidates
	seedVagas(db)

	logrus.Info("✅ Connected to MySQL and migrated schema")
	return db
}

// Migrate creates/updates the tables this service owns. Split out so the
// tests can run it against their own database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Vaga{},
		&domain.VagaSkill{},
		&domain.Candidato{},
		&domain.Upload{},
		&domain.Evaluation{},
	)
}

func seedVagas(db *gorm.DB) {
	var count int64
	if err := db.Model(&domain.Vaga{}).Count(&count).Error; err != nil {
		logrus.Fatalf("failed to count vagas: %v", err)
	}

	if count > 0 {
		return // already seeded
	}

	vagas := []domain.Vaga{
		{
			Titulo:    "Analista de Atendimento",
			Descricao: "Atendimento ao cliente em canais digitais.",
			ExtraQuestions: "Você já trabalhou com atendimento por telefone?\n" +
				"Tem disponibilidade para escala aos sábados?",
			Skills: []domain.VagaSkill{
				{Nome: "Comunicação eficaz"},
				{Nome: "Empatia"},
				{Nome: "Resiliência"},
			},
		},
		{
			Titulo:    "Assistente Administrativo",
			Descricao: "Rotinas administrativas e apoio ao time comercial.",
			Skills: []domain.VagaSkill{
				{Nome: "Organização"},
			},
		},
	}

	if err := db.Create(&vagas).Error; err != nil {
		logrus.Fatalf("failed to seed vagas: %v", err)
	}

	candidatos := []domain.Candidato{
		{Nome: "Candidato de Teste", Email: "candidato@example.com"},
	}
	if err := db.Create(&candidatos).Error; err != nil {
		logrus.Fatalf("failed to seed candidatos: %v", err)
	}

	logrus.Info("✅ Seeded initial vagas")
}
