package http

import (
	"time"

	"github.com/advertomedia/room-booking-backend/internal/booking"
	"github.com/advertomedia/room-booking-backend/internal/pkg/request"
)

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	Date   string `form:"date" binding:"omitempty,isodate"`
	From   string `form:"from" binding:"omitempty,isodate"`
	To     string `form:"to" binding:"omitempty,isodate"`
	Status string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
	UserID string `form:"user_id" binding:"omitempty,uuid"`
}

// Validate performs custom validation for ListBookingsRequest.
func (r *ListBookingsRequest) Validate() error {
	if r.From != "" && r.To != "" && r.From > r.To {
		return booking.ErrInvalidTimeRange
	}
	return nil
}

type BookingResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Title        string    `json:"title"`
	Organizer    string    `json:"organizer"`
	Date         string    `json:"date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Participants []string  `json:"participants"`
	Description  string    `json:"description,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	participants := b.Participants
	if participants == nil {
		participants = []string{}
	}
	return BookingResponse{
		ID:           b.ID,
		UserID:       b.UserID,
		Title:        b.Title,
		Organizer:    b.Organizer,
		Date:         b.Date,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Participants: participants,
		Description:  b.Description,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

type CreateBookingRequest struct {
	Title        string   `json:"title" binding:"required"`
	Organizer    string   `json:"organizer"` // defaults to the caller's display name
	Date         string   `json:"date" binding:"required,isodate"`
	StartTime    string   `json:"start_time" binding:"required,hhmm"`
	EndTime      string   `json:"end_time" binding:"required,hhmm"`
	Participants []string `json:"participants"`
	Description  string   `json:"description"`
}

// Validate performs custom validation for CreateBookingRequest.
func (r *CreateBookingRequest) Validate() error {
	if r.StartTime >= r.EndTime {
		return booking.ErrInvalidTimeRange
	}
	return nil
}

type UpdateBookingRequest struct {
	Title        *string   `json:"title"`
	Organizer    *string   `json:"organizer"`
	Date         *string   `json:"date" binding:"omitempty,isodate"`
	StartTime    *string   `json:"start_time" binding:"omitempty,hhmm"`
	EndTime      *string   `json:"end_time" binding:"omitempty,hhmm"`
	Participants *[]string `json:"participants"`
	Description  *string   `json:"description"`
	Status       *string   `json:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
}

// Validate performs custom validation for UpdateBookingRequest.
func (r *UpdateBookingRequest) Validate() error {
	if r.StartTime != nil && r.EndTime != nil && *r.StartTime >= *r.EndTime {
		return booking.ErrInvalidTimeRange
	}
	return nil
}

// UpcomingRequest defines query parameters for the upcoming bookings list.
type UpcomingRequest struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=50"`
}

// BookedDatesResponse lists the dates that have bookings, for the calendar.
type BookedDatesResponse struct {
	Dates []string `json:"dates"`
}
