package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/communityconnect/community-wifi/internal/repository"
)

// StatsHandler serves the dashboard counters the client polls for
// display refresh.
type StatsHandler struct {
	Repo *repository.StatsRepo
}

// NewStatsHandler constructs a StatsHandler.  The repository must be
// non-nil.
func NewStatsHandler(repo *repository.StatsRepo) *StatsHandler {
	if repo == nil {
		panic("nil repository passed to NewStatsHandler")
	}
	return &StatsHandler{Repo: repo}
}

// Get handles GET /api/stats.  It returns the number of active access
// points, the number of bookings whose end time has not passed, and
// the sum of current_users over active points.
func (h *StatsHandler) Get(c echo.Context) error {
	stats, err := h.Repo.Compute(c.Request().Context(), time.Now())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, stats)
}
