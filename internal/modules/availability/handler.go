package availability

import (
	"net/http"
	"strconv"

	"mentorhub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes availability reads.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/mentors/:id/availability", h.ListRules)
	rg.GET("/mentors/:id/slots", h.ListSlots)
}

// RegisterEditorRoutes exposes rule management (editor or admin).
func (h *Handler) RegisterEditorRoutes(rg *gin.RouterGroup) {
	rg.POST("/mentors/:id/availability", h.CreateRule)
	rg.DELETE("/availability/:id", h.DeleteRule)
}

func (h *Handler) ListRules(c *gin.Context) {
	mentorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid mentor ID")
		return
	}

	rules, err := h.service.ListRules(c.Request.Context(), mentorID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"availability": rules})
}

func (h *Handler) ListSlots(c *gin.Context) {
	mentorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid mentor ID")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Query parameter 'date' is required (YYYY-MM-DD)")
		return
	}

	slots, err := h.service.SlotsForDate(c.Request.Context(), mentorID, dateStr)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

func (h *Handler) CreateRule(c *gin.Context) {
	mentorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid mentor ID")
		return
	}

	var req CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rule, err := h.service.CreateRule(c.Request.Context(), mentorID, req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"rule": rule})
}

func (h *Handler) DeleteRule(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid rule ID")
		return
	}

	if err := h.service.DeleteRule(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "Availability rule removed", gin.H{"id": id})
}

func (h *Handler) renderError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid availability rule")
	case ErrMentorNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Mentor not found")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Availability rule not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process availability request")
	}
}
