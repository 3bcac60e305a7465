package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/communityconnect/community-wifi/internal/queue"
	"github.com/communityconnect/community-wifi/internal/repository"
	queue_publisher "github.com/communityconnect/community-wifi/internal/service"
)

// BookingHandler serves the booking listing and creation endpoints.
// Creation runs its capacity check, booking insert and counter
// increment inside a single transaction so that two concurrent
// bookings against the same access point cannot both claim its last
// free slot.
type BookingHandler struct {
	AccessPointRepo *repository.AccessPointRepo
	BookingRepo     *repository.BookingRepo
}

// NewBookingHandler constructs a BookingHandler with the provided
// repositories.  All dependencies must be non-nil.
func NewBookingHandler(apRepo *repository.AccessPointRepo, bookingRepo *repository.BookingRepo) *BookingHandler {
	if apRepo == nil || bookingRepo == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{AccessPointRepo: apRepo, BookingRepo: bookingRepo}
}

// acceptedTimeLayouts lists the timestamp formats bookings may be
// submitted in: RFC3339, the same without a zone (what the browser's
// datetime-local input and toISOString().slice(0,19) produce), and
// space-separated variants.  Zoneless input is taken as UTC.
var acceptedTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// normalizeTimestamp parses s against the accepted layouts and
// re-renders it in the single stored layout, UTC.  Storing one layout
// keeps string comparison on end_time a valid chronological ordering.
func normalizeTimestamp(s string) (string, bool) {
	for _, layout := range acceptedTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format(repository.TimeLayout), true
		}
	}
	return "", false
}

// List handles GET /api/bookings.  It returns bookings whose end time
// has not yet passed, each carrying its access point's name, ordered
// by start time.
func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.BookingRepo.ListActive(c.Request().Context(), time.Now())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, bookings)
}

// Create handles POST /api/bookings.  It validates presence of the
// required fields, then atomically reserves a capacity slot on the
// referenced access point and inserts the booking.  Responses:
// 400 for missing fields or a full access point, 404 for an unknown
// access point id, 200 with the created record on success.
func (h *BookingHandler) Create(c echo.Context) error {
	var body struct {
		AccessPointID int64   `json:"access_point_id"`
		UserName      string  `json:"user_name"`
		UserContact   *string `json:"user_contact"`
		StartTime     string  `json:"start_time"`
		EndTime       string  `json:"end_time"`
		Purpose       *string `json:"purpose"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Access point ID, user name, start time, and end time are required"})
	}
	if body.AccessPointID == 0 || body.UserName == "" || body.StartTime == "" || body.EndTime == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Access point ID, user name, start time, and end time are required"})
	}
	startTime, ok := normalizeTimestamp(body.StartTime)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_time and end_time must be valid timestamps"})
	}
	endTime, ok := normalizeTimestamp(body.EndTime)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_time and end_time must be valid timestamps"})
	}

	ctx := c.Request().Context()
	tx, err := h.AccessPointRepo.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := h.AccessPointRepo.ReserveSlotTx(ctx, tx, body.AccessPointID); err != nil {
		if errors.Is(err, repository.ErrAccessPointNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Access point not found"})
		}
		if errors.Is(err, repository.ErrAtCapacity) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Access point is at capacity"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	created, err := h.BookingRepo.CreateTx(ctx, tx, repository.BookingParams{
		AccessPointID: body.AccessPointID,
		UserName:      body.UserName,
		UserContact:   body.UserContact,
		StartTime:     startTime,
		EndTime:       endTime,
		Purpose:       body.Purpose,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	committed = true

	// Publish the event off the request path; delivery is best-effort
	// and failures are only logged by the publisher.
	go h.publishCreated(created.ID, created.AccessPointID, created.UserName, startTime, endTime)

	return c.JSON(http.StatusOK, created)
}

func (h *BookingHandler) publishCreated(bookingID, accessPointID int64, userName, startTime, endTime string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	ev := queue.BookingCreatedEvent{
		BookingID:     bookingID,
		AccessPointID: accessPointID,
		UserName:      userName,
		StartTime:     startTime,
		EndTime:       endTime,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if ap, err := h.AccessPointRepo.GetByID(ctx, accessPointID); err == nil {
		ev.AccessPointName = ap.Name
	}
	_ = queue_publisher.PublishBookingCreated(ctx, ev)
}
