package analysis

import (
	"strings"
	"time"

	"github.com/decklens/core/internal/middleware"
	"github.com/decklens/core/internal/models"
	"github.com/decklens/core/internal/modules/report"
	"github.com/decklens/core/internal/modules/storage/blob"
	"github.com/decklens/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	svc   *Service
	store blob.Store
	db    *gorm.DB
}

func NewHandler(svc *Service, store blob.Store, db *gorm.DB) *Handler {
	return &Handler{svc: svc, store: store, db: db}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, gateMW gin.HandlerFunc) {
	rg.POST("/analyze", gateMW, middleware.OptionalAuth(), h.analyze)
}

type analyzeDTO struct {
	Text string `json:"text"`
}

func (h *Handler) analyze(c *gin.Context) {
	var dto analyzeDTO
	if err := c.ShouldBindJSON(&dto); err != nil || strings.TrimSpace(dto.Text) == "" {
		response.BadRequest(c, "Text is required for analysis.")
		return
	}

	result, err := h.svc.Analyze(c.Request.Context(), dto.Text)
	if err != nil {
		response.BadRequest(c, "Text is required for analysis.")
		return
	}

	pdfBytes, err := report.Render(result.Thesis)
	if err != nil {
		response.InternalErrorMsg(c, "An error occurred during analysis.")
		return
	}

	key := blob.BuildKey(blob.CategoryReport, "", time.Now())
	url, err := blob.Publish(c.Request.Context(), h.store, key, pdfBytes, "application/pdf")
	if err != nil {
		response.InternalErrorMsg(c, "An error occurred during analysis.")
		return
	}

	record := models.ThesisModel{
		UserID: middleware.CurrentUserID(c),
		Text:   dto.Text,
		Thesis: result.Thesis,
	}
	if err := h.db.Create(&record).Error; err != nil {
		response.InternalErrorMsg(c, "An error occurred during analysis.")
		return
	}

	response.OK(c, gin.H{
		"downloadUrl": url,
		"reportId":    record.ID,
	})
}
