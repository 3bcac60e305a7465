// Package handler exposes the HTTP handlers for the community WiFi
// API.  Handlers own input validation and transaction boundaries;
// repositories own the SQL.  Store-layer faults that are not
// classified by a sentinel error surface as 500 responses carrying
// the raw error message, which the API contract allows because no
// secrets ever appear in store error text.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/communityconnect/community-wifi/internal/repository"
)

// AccessPointHandler serves the access point listing and creation
// endpoints.
type AccessPointHandler struct {
	Repo *repository.AccessPointRepo
}

// NewAccessPointHandler constructs an AccessPointHandler.  The
// repository must be non-nil.
func NewAccessPointHandler(repo *repository.AccessPointRepo) *AccessPointHandler {
	if repo == nil {
		panic("nil repository passed to NewAccessPointHandler")
	}
	return &AccessPointHandler{Repo: repo}
}

// List handles GET /api/access-points.  It returns every access point
// with the active flag set, as a plain JSON array.
func (h *AccessPointHandler) List(c echo.Context) error {
	points, err := h.Repo.ListActive(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, points)
}

// Create handles POST /api/access-points.  Name, latitude and
// longitude are required; a zero coordinate is rejected the same as a
// missing one, and a latitude that is not a JSON number fails the
// same validation.  max_users defaults to 5 when omitted.  On success
// the full created record, including the assigned id, is returned
// with status 200.
func (h *AccessPointHandler) Create(c echo.Context) error {
	var body struct {
		Name           string  `json:"name"`
		Latitude       float64 `json:"latitude"`
		Longitude      float64 `json:"longitude"`
		Description    *string `json:"description"`
		Contact        *string `json:"contact"`
		AvailableHours *string `json:"available_hours"`
		MaxUsers       int     `json:"max_users"`
		InternetSpeed  *string `json:"internet_speed"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name, latitude, and longitude are required"})
	}
	if body.Name == "" || body.Latitude == 0 || body.Longitude == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name, latitude, and longitude are required"})
	}
	created, err := h.Repo.Create(c.Request().Context(), repository.AccessPointParams{
		Name:           body.Name,
		Latitude:       body.Latitude,
		Longitude:      body.Longitude,
		Description:    body.Description,
		Contact:        body.Contact,
		AvailableHours: body.AvailableHours,
		MaxUsers:       body.MaxUsers,
		InternetSpeed:  body.InternetSpeed,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, created)
}
