package bmi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/healthtrack-api/internal/handler"
	"github.com/jwalitptl/healthtrack-api/internal/model"
	"github.com/jwalitptl/healthtrack-api/internal/service/bmi"
	"github.com/jwalitptl/healthtrack-api/internal/service/recommendation"
	"github.com/jwalitptl/healthtrack-api/pkg/httputil"
)

type Handler struct {
	svc    *bmi.Service
	recSvc *recommendation.Service
}

func NewHandler(svc *bmi.Service, recSvc *recommendation.Service) *Handler {
	return &Handler{svc: svc, recSvc: recSvc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	b := r.Group("/bmi")
	{
		b.POST("", h.Record)
		b.GET("/today", h.Today)
		b.GET("/history", h.History)
	}
}

func (h *Handler) Record(c *gin.Context) {
	username := handler.SessionUser(c)

	var req model.BMIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	result, err := h.svc.Record(c.Request.Context(), username, &req)
	if err != nil {
		c.JSON(httputil.StatusOf(err), handler.NewErrorResponse(err.Error()))
		return
	}

	// a new observation can move the user across plan thresholds
	h.recSvc.InvalidatePlan(username)

	c.JSON(http.StatusOK, handler.NewSuccessResponse(result))
}

// Today reports whether a BMI record already exists for the current
// date. The calculator form uses it to disable resubmission and to
// pre-fill the last height.
func (h *Handler) Today(c *gin.Context) {
	username := handler.SessionUser(c)

	record, err := h.svc.Today(c.Request.Context(), username)
	if err != nil {
		c.JSON(httputil.StatusOf(err), handler.NewErrorResponse(err.Error()))
		return
	}

	latest, err := h.svc.Latest(c.Request.Context(), username)
	if err != nil {
		c.JSON(httputil.StatusOf(err), handler.NewErrorResponse(err.Error()))
		return
	}

	resp := gin.H{"recorded": record != nil, "record": record}
	if latest != nil {
		resp["last_height"] = latest.Height
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(resp))
}

func (h *Handler) History(c *gin.Context) {
	username := handler.SessionUser(c)

	records, err := h.svc.History(c.Request.Context(), username)
	if err != nil {
		c.JSON(httputil.StatusOf(err), handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(records))
}
