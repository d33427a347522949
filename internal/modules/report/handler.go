package report

import (
	"errors"
	"net/http"

	"github.com/decklens/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/report/:id", h.download)
}

// download re-renders the persisted thesis and streams it as an attachment.
// The PDF is generated fresh on every lookup; blob storage is not involved.
func (h *Handler) download(c *gin.Context) {
	thesis, err := h.svc.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFoundText(c, "Report not found")
			return
		}
		response.InternalErrorMsg(c, "Error generating PDF report")
		return
	}

	pdfBytes, err := Render(thesis.Thesis)
	if err != nil {
		response.InternalErrorMsg(c, "Error generating PDF report")
		return
	}

	c.Header("Content-Disposition", "attachment;filename=report.pdf")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
