package deck

import (
	"io"

	"github.com/decklens/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, gateMW gin.HandlerFunc) {
	rg.POST("/upload", gateMW, h.upload)
}

func (h *Handler) upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequestText(c, "No file uploaded.")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.BadRequestText(c, "No file uploaded.")
		return
	}
	payload, err := io.ReadAll(f)
	f.Close()
	if err != nil || len(payload) == 0 {
		response.BadRequestText(c, "No file uploaded.")
		return
	}

	result, err := h.svc.Process(c.Request.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		payload,
	)
	if err != nil {
		response.InternalErrorMsg(c, "Error uploading or parsing PPTX file")
		return
	}

	response.OK(c, gin.H{
		"message":     "File uploaded and parsed successfully",
		"text":        result.Text,
		"downloadUrl": result.DownloadURL,
	})
}
