package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/advertomedia/room-booking-backend/internal/auth"
	"github.com/advertomedia/room-booking-backend/internal/booking"
	"github.com/advertomedia/room-booking-backend/internal/pkg/response"
	"github.com/advertomedia/room-booking-backend/internal/user"
)

type Handler struct {
	service       booking.Service
	userService   user.Service
	upcomingLimit int
}

func NewHandler(service booking.Service, userService user.Service, upcomingLimit int) *Handler {
	if upcomingLimit < 1 {
		upcomingLimit = 5
	}
	return &Handler{
		service:       service,
		userService:   userService,
		upcomingLimit: upcomingLimit,
	}
}

// wallClock renders the ambient time as the local "YYYY-MM-DD" / "HH:MM"
// strings the schedule core operates on. Handlers read the clock once per
// request and pass it down; the core never reads it.
func wallClock(t time.Time) (today, now string) {
	return t.Format("2006-01-02"), t.Format("15:04")
}

// organizerDefault resolves the organizer for a booking when the request does
// not name one: display name first, then the account email.
func (h *Handler) organizerDefault(c *gin.Context, userID string) string {
	u, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		return ""
	}
	if u.DisplayName != nil && *u.DisplayName != "" {
		return *u.DisplayName
	}
	return u.Email
}

func (h *Handler) List(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, err)
		return
	}
	req.Normalize()

	filter := booking.Filter{
		Date:     req.Date,
		DateFrom: req.From,
		DateTo:   req.To,
		Status:   req.Status,
		UserID:   req.UserID,
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	bookings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if err := body.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	organizer := body.Organizer
	if organizer == "" {
		organizer = h.organizerDefault(c, userID)
	}

	req := booking.CreateRequest{
		UserID:       userID,
		Title:        body.Title,
		Organizer:    organizer,
		Date:         body.Date,
		StartTime:    body.StartTime,
		EndTime:      body.EndTime,
		Participants: body.Participants,
		Description:  body.Description,
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if err := body.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	req := booking.UpdateRequest{
		Title:        body.Title,
		Organizer:    body.Organizer,
		Date:         body.Date,
		StartTime:    body.StartTime,
		EndTime:      body.EndTime,
		Participants: body.Participants,
		Description:  body.Description,
		Status:       body.Status,
	}

	b, err := h.service.Update(c.Request.Context(), id, req, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, auth.GetUserID(c)); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Upcoming(c *gin.Context) {
	var req UpcomingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	limit := req.Limit
	if limit == 0 {
		limit = h.upcomingLimit
	}

	today, now := wallClock(time.Now())
	bookings, err := h.service.Upcoming(c.Request.Context(), today, now, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list upcoming bookings"})
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) Dates(c *gin.Context) {
	dates, err := h.service.BookedDates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list booked dates"})
		return
	}

	c.JSON(http.StatusOK, BookedDatesResponse{Dates: dates})
}
