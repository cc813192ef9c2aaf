package tracking

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/healthtrack-api/internal/handler"
	"github.com/jwalitptl/healthtrack-api/internal/model"
	"github.com/jwalitptl/healthtrack-api/internal/service/tracking"
	"github.com/jwalitptl/healthtrack-api/pkg/httputil"
)

type Handler struct {
	svc *tracking.Service
}

func NewHandler(svc *tracking.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	t := r.Group("/tracking")
	{
		t.POST("", h.Log)
		t.GET("", h.List)
		t.GET("/export", h.ExportCSV)
		t.GET("/export.xlsx", h.ExportXLSX)
	}
}

func (h *Handler) Log(c *gin.Context) {
	username := handler.SessionUser(c)

	var req model.TrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	record, err := h.svc.Log(c.Request.Context(), username, &req)
	if err != nil {
		c.JSON(httputil.StatusOf(err), handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(record))
}

func (h *Handler) List(c *gin.Context) {
	username := handler.SessionUser(c)

	var filter model.TrackingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	records, err := h.svc.List(c.Request.Context(), username, &filter)
	if err != nil {
		c.JSON(httputil.StatusOf(err), handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(records))
}

func (h *Handler) ExportCSV(c *gin.Context) {
	username := handler.SessionUser(c)

	data, err := h.svc.ExportCSV(c.Request.Context(), username)
	if err != nil {
		c.JSON(httputil.StatusOf(err), handler.NewErrorResponse(err.Error()))
		return
	}

	filename := fmt.Sprintf("tracking_data_%s.csv", username)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

func (h *Handler) ExportXLSX(c *gin.Context) {
	username := handler.SessionUser(c)

	data, err := h.svc.ExportXLSX(c.Request.Context(), username)
	if err != nil {
		c.JSON(httputil.StatusOf(err), handler.NewErrorResponse(err.Error()))
		return
	}

	filename := fmt.Sprintf("tracking_data_%s.xlsx", username)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
