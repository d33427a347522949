package auth

import (
	"errors"

	"github.com/decklens/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", h.register)
	rg.POST("/login", h.login)
}

func (h *Handler) register(c *gin.Context) {
	var dto credentialsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequestText(c, "Username and password are required")
		return
	}

	if _, err := h.svc.Register(dto.Username, dto.Password); err != nil {
		if errors.Is(err, errDuplicateUsername) {
			response.BadRequestText(c, "Username already exists")
			return
		}
		response.InternalErrorMsg(c, "Error registering user")
		return
	}
	response.CreatedText(c, "User registered successfully")
}

func (h *Handler) login(c *gin.Context) {
	var dto credentialsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Unauthorized(c, "Invalid credentials")
		return
	}

	token, err := h.svc.Login(dto.Username, dto.Password, c.ClientIP())
	if err != nil {
		if errors.Is(err, errInvalidCredentials) {
			response.Unauthorized(c, "Invalid credentials")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, loginResponse{Token: token})
}
