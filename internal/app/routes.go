package app

import (
	"fmt"
	"net/http"

	"github.com/decklens/core/internal/middleware"
	"github.com/decklens/core/internal/modules/analysis"
	"github.com/decklens/core/internal/modules/auth"
	"github.com/decklens/core/internal/modules/deck"
	"github.com/decklens/core/internal/modules/report"
	"github.com/decklens/core/internal/modules/storage/blob"
	"github.com/decklens/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes() error {
	r := a.router

	r.NoRoute(func(c *gin.Context) {
		response.NotFoundMsg(c, "Not Found")
	})

	store, err := blob.NewS3Store(a.cfg.S3)
	if err != nil {
		return fmt.Errorf("blob store: %w", err)
	}

	// The admission gate guards only the two expensive endpoints.
	gateMW := middleware.RateLimit(a.limiter, a.logger)

	root := r.Group("")
	root.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": "pong"})
	})

	auth.NewHandler(auth.NewService(a.db)).RegisterRoutes(root)

	deckSvc := deck.NewService(store, a.logger)
	deck.NewHandler(deckSvc).RegisterRoutes(root, gateMW)

	analysisSvc := analysis.NewService(
		analysis.NewOpenAICompleter(a.cfg.AI),
		a.cfg.AI.APIKey,
		a.logger,
	)
	analysis.NewHandler(analysisSvc, store, a.db).RegisterRoutes(root, gateMW)

	report.NewHandler(report.NewService(a.db)).RegisterRoutes(root)

	return nil
}
