package interfaces

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"connect-skills/disc"
	"connect-skills/domain"
	"connect-skills/infrastructure"
)

const maxVagaSkills = 3

// CompatibilityScorer is what the handler needs from the scoring service.
type CompatibilityScorer interface {
	ScoreCompatibility(ctx context.Context, questions []string, items []domain.AnswerItem) ([]domain.CompatibilityResult, error)
}

// Notifier is the fire-and-forget notification side-channel.
type Notifier interface {
	PublishNotification(n infrastructure.Notification) error
}

type HTTPHandler struct {
	DB       *gorm.DB
	Store    *infrastructure.EvaluationStore
	Scorer   CompatibilityScorer
	Notifier Notifier
}

func NewHTTPHandler(router *gin.Engine, db *gorm.DB, scorer CompatibilityScorer, notifier Notifier) *HTTPHandler {
	h := &HTTPHandler{
		DB:       db,
		Store:    infrastructure.NewEvaluationStore(db),
		Scorer:   scorer,
		Notifier: notifier,
	}

	router.GET("/vagas/:id/questions", h.GetQuestions)
	router.POST("/vagas/:id/evaluate", h.Evaluate)
	router.GET("/vagas/:id/avaliacoes", h.ListEvaluations)
	router.POST("/upload", h.UploadFile)

	return h
}

// GetQuestions assembles the interview question set for a posting: bank
// questions for its skills (padded with defaults up to 3), the operator's
// extra questions, fallback padding.
func (h *HTTPHandler) GetQuestions(c *gin.Context) {
	vaga, ok := h.loadVaga(c)
	if !ok {
		return
	}

	questions := disc.SelectQuestions(padSkills(vaga.SkillNames()), vaga.ExtraQuestions)

	c.JSON(http.StatusOK, gin.H{
		"vaga_id":   vaga.ID,
		"questions": questions,
	})
}

type evaluateRequest struct {
	CandidatoID uint                `json:"candidato_id" binding:"required"`
	Resposta    *string             `json:"resposta"`
	Items       []domain.AnswerItem `json:"items" binding:"required,min=1"`
	UploadID    uint                `json:"upload_id"`
}

// Evaluate runs the compatibility flow for one candidate on one posting:
// select questions, call the scoring service, aggregate, upsert the
// evaluation row, notify.
func (h *HTTPHandler) Evaluate(c *gin.Context) {
	vaga, ok := h.loadVaga(c)
	if !ok {
		return
	}

	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var candidato domain.Candidato
	if err := h.DB.First(&candidato, req.CandidatoID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "candidato not found"})
		return
	}

	items := req.Items
	if req.UploadID != 0 {
		var upload domain.Upload
		if err := h.DB.First(&upload, req.UploadID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "upload not found"})
			return
		}
		items = append(items, domain.AnswerItem{Item: "Currículo anexado", Resposta: upload.Texto})
	}

	questions := disc.SelectQuestions(padSkills(vaga.SkillNames()), vaga.ExtraQuestions)

	results, err := h.Scorer.ScoreCompatibility(c.Request.Context(), questions, items)
	if err != nil {
		var remoteErr *infrastructure.RemoteScoringError
		if errors.As(err, &remoteErr) {
			logrus.WithFields(logrus.Fields{
				"vaga_id":      vaga.ID,
				"candidato_id": candidato.ID,
				"preview":      remoteErr.Preview,
			}).Errorf("scoring failed: %v", remoteErr)
		} else {
			logrus.Errorf("scoring failed: %v", err)
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Não foi possível concluir a avaliação de compatibilidade. Tente novamente.",
		})
		return
	}

	score := domain.OverallScore(results)

	eval, err := h.Store.UpsertEvaluation(vaga.ID, candidato.ID, score, req.Resposta, results)
	if err != nil {
		logrus.Errorf("failed to store evaluation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store evaluation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           eval.ID,
		"vaga_id":      eval.VagaID,
		"candidato_id": eval.CandidatoID,
		"score":        eval.Score,
		"breakdown":    results,
	})

	// Notification goes out after the response; failures stay on the
	// side-channel.
	if h.Notifier != nil {
		if err := h.Notifier.PublishNotification(infrastructure.Notification{
			CandidatoNome:  candidato.Nome,
			CandidatoEmail: candidato.Email,
			VagaTitulo:     vaga.Titulo,
			Score:          eval.Score,
		}); err != nil {
			logrus.Warnf("failed to queue notification: %v", err)
		}
	}
}

// ListEvaluations returns a posting's evaluations ordered by score
// descending, with candidate identity for display.
func (h *HTTPHandler) ListEvaluations(c *gin.Context) {
	vaga, ok := h.loadVaga(c)
	if !ok {
		return
	}

	rows, err := h.Store.ListByVaga(vaga.ID)
	if err != nil {
		logrus.Errorf("failed to list evaluations: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list evaluations"})
		return
	}

	out := make([]gin.H, 0, len(rows))
	for _, r := range rows {
		out = append(out, gin.H{
			"candidato_id":    r.CandidatoID,
			"candidato_nome":  r.CandidatoNome,
			"candidato_email": r.CandidatoEmail,
			"score":           r.Score,
			"resposta":        r.Resposta,
			"breakdown":       r.Breakdown,
			"updated_at":      r.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"vaga_id":    vaga.ID,
		"avaliacoes": out,
	})
}

// UploadFile receives a candidate attachment, extracts its text and stores
// it for later reference on evaluation submission.
func (h *HTTPHandler) UploadFile(c *gin.Context) {
	candidatoID, err := strconv.Atoi(c.PostForm("candidato_id"))
	if err != nil || candidatoID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "candidato_id is required"})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open file"})
		return
	}
	defer file.Close()

	texto, err := infrastructure.ExtractTextFromFile(file, header.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to extract text: " + err.Error()})
		return
	}

	upload := domain.Upload{
		CandidatoID: uint(candidatoID),
		FileName:    header.Filename,
		Texto:       texto,
	}
	if err := h.DB.Create(&upload).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save upload: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"upload_id": upload.ID,
		"message":   "File uploaded and processed successfully",
	})
}

// loadVaga resolves the :id route param to a posting with its skills, or
// writes the error response and returns false.
func (h *HTTPHandler) loadVaga(c *gin.Context) (*domain.Vaga, bool) {
	idStr := strings.TrimSpace(c.Param("id"))
	id, err := strconv.Atoi(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return nil, false
	}

	var vaga domain.Vaga
	if err := h.DB.Preload("Skills").First(&vaga, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "vaga not found"})
		return nil, false
	}
	return &vaga, true
}

// padSkills fills a posting's skill list with the default skills up to 3
// entries before question selection. Caller-side padding, per the selector
// contract.
func padSkills(names []string) []string {
	for _, def := range disc.DefaultSkills {
		if len(names) >= maxVagaSkills {
			break
		}
		if containsNormalized(names, def) {
			continue
		}
		names = append(names, def)
	}
	return names
}

func containsNormalized(names []string, target string) bool {
	target = strings.ToLower(strings.TrimSpace(target))
	for _, n := range names {
		if strings.ToLower(strings.TrimSpace(n)) == target {
			return true
		}
	}
	return false
}
