package recommendation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/healthtrack-api/internal/handler"
	"github.com/jwalitptl/healthtrack-api/internal/service/recommendation"
	"github.com/jwalitptl/healthtrack-api/pkg/httputil"
)

type Handler struct {
	svc *recommendation.Service
}

func NewHandler(svc *recommendation.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	rec := r.Group("/recommendations")
	{
		rec.GET("/exercise", h.Exercises)
		rec.GET("/food", h.FoodPlan)
	}
	r.GET("/emergency-contacts", h.EmergencyContacts)

	ncds := r.Group("/ncds")
	{
		ncds.GET("", h.Diseases)
		ncds.GET("/:id", h.Disease)
	}
}

// Exercises lists the catalog, narrowed by repeatable ?intensity=
// query parameters.
func (h *Handler) Exercises(c *gin.Context) {
	intensities := c.QueryArray("intensity")
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.svc.Exercises(intensities)))
}

func (h *Handler) FoodPlan(c *gin.Context) {
	username := handler.SessionUser(c)

	plan, err := h.svc.FoodPlan(c.Request.Context(), username)
	if err != nil {
		c.JSON(httputil.StatusOf(err), handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(plan))
}

func (h *Handler) EmergencyContacts(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.svc.EmergencyContacts()))
}

func (h *Handler) Diseases(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.svc.Diseases()))
}

func (h *Handler) Disease(c *gin.Context) {
	d := h.svc.Disease(c.Param("id"))
	if d == nil {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("unknown disease"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(d))
}
