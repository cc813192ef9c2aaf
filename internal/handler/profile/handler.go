package profile

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/healthtrack-api/internal/handler"
	"github.com/jwalitptl/healthtrack-api/internal/model"
	"github.com/jwalitptl/healthtrack-api/internal/service/profile"
	"github.com/jwalitptl/healthtrack-api/internal/service/recommendation"
	"github.com/jwalitptl/healthtrack-api/pkg/httputil"
)

type Handler struct {
	svc    *profile.Service
	recSvc *recommendation.Service
}

func NewHandler(svc *profile.Service, recSvc *recommendation.Service) *Handler {
	return &Handler{svc: svc, recSvc: recSvc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	p := r.Group("/profile")
	{
		p.GET("/health", h.GetHealthProfile)
		p.PUT("/health", h.SaveHealthProfile)
		p.GET("/image", h.GetImage)
		p.PUT("/image", h.SaveImage)
	}
}

func (h *Handler) GetHealthProfile(c *gin.Context) {
	username := handler.SessionUser(c)

	p, err := h.svc.GetHealthProfile(c.Request.Context(), username)
	if err != nil {
		c.JSON(httputil.StatusOf(err), handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(p))
}

func (h *Handler) SaveHealthProfile(c *gin.Context) {
	username := handler.SessionUser(c)

	var req model.SaveHealthProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	p, err := h.svc.SaveHealthProfile(c.Request.Context(), username, &req)
	if err != nil {
		c.JSON(httputil.StatusOf(err), handler.NewErrorResponse(err.Error()))
		return
	}

	// the chronic disease field feeds the food plan match
	h.recSvc.InvalidatePlan(username)

	c.JSON(http.StatusOK, handler.NewSuccessResponse(p))
}

func (h *Handler) GetImage(c *gin.Context) {
	username := handler.SessionUser(c)

	img, err := h.svc.GetImage(c.Request.Context(), username)
	if err != nil {
		c.JSON(httputil.StatusOf(err), handler.NewErrorResponse(err.Error()))
		return
	}
	if img == nil {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("no profile image uploaded"))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(img))
}

func (h *Handler) SaveImage(c *gin.Context) {
	username := handler.SessionUser(c)

	var req model.SaveProfileImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	img, err := h.svc.SaveImage(c.Request.Context(), username, &req)
	if err != nil {
		c.JSON(httputil.StatusOf(err), handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(img))
}
