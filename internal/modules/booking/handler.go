package booking

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

// RegisterPublicRoutes exposes the applicant-facing submission endpoint.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/mentors/:id/bookings", h.SubmitBooking)
}

// RegisterEditorRoutes exposes the review workflow (editor or admin).
func (h *Handler) RegisterEditorRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.ListAll)
	rg.GET("/mentors/:id/bookings", h.ListByMentor)
	rg.PATCH("/bookings/:id/status", h.ReviewBooking)
	rg.DELETE("/bookings/:id", h.DeleteBooking)
}

func (h *Handler) SubmitBooking(c *gin.Context) {
	mentorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid mentor ID")
		return
	}

	var req SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.SubmitBooking(c.Request.Context(), mentorID, req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated,
		"Your request was received. We will get back to you by email.",
		gin.H{"booking": b},
	)
}

func (h *Handler) ListByMentor(c *gin.Context) {
	mentorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid mentor ID")
		return
	}

	bookings, err := h.service.ListByMentor(c.Request.Context(), mentorID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) ListAll(c *gin.Context) {
	bookings, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) ReviewBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return
	}

	var req ReviewBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	reviewedBy := "user:" + strconv.FormatInt(c.GetInt64("user_id"), 10)

	b, err := h.service.ReviewBooking(c.Request.Context(), id, req, reviewedBy)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return
	}

	if err := h.service.DeleteBooking(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "Booking deleted", gin.H{"id": id})
}

func (h *Handler) renderError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking data")
	case ErrMentorNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Mentor not found")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process booking request")
	}
}
