package news

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/healthtrack-api/internal/handler"
	"github.com/jwalitptl/healthtrack-api/internal/service/news"
)

type Handler struct {
	svc *news.Service
}

func NewHandler(svc *news.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/news", h.Headlines)
}

// Headlines always answers 200: on upstream failure the service
// substitutes the built-in fallback items.
func (h *Handler) Headlines(c *gin.Context) {
	items := h.svc.Headlines(c.Request.Context())
	c.JSON(http.StatusOK, handler.NewSuccessResponse(items))
}
