package booking

import (
	"net/http"
	"time"

	"github.com/advertomedia/room-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "booking not found")
	ErrTimeConflict      = apperror.New(http.StatusConflict, "time slot conflicts with an existing booking")
	ErrInvalidTimeRange  = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrTitleRequired     = apperror.New(http.StatusBadRequest, "title is required")
	ErrOrganizerRequired = apperror.New(http.StatusBadRequest, "organizer is required")
	ErrInvalidStatus     = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrPermissionDenied  = apperror.New(http.StatusForbidden, "only the booking owner may modify it")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Booking is one reservation of the meeting room.
//
// Date is an ISO "YYYY-MM-DD" string and StartTime/EndTime are 24-hour
// "HH:MM" wall-clock strings. Both formats order lexically, so schedule
// logic compares them as plain strings. The booked interval is half-open:
// [StartTime, EndTime).
type Booking struct {
	ID           string
	UserID       string
	Title        string
	Organizer    string
	Date         string
	StartTime    string
	EndTime      string
	Participants []string
	Description  string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Filter defines parameters for listing bookings.
type Filter struct {
	Date     string // exact calendar date
	DateFrom string // bookings on or after this date
	DateTo   string // bookings on or before this date
	UserID   string
	Status   string
	Page     int
	PageSize int
}
