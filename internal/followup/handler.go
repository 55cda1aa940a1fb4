package followup

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	reminderOffsetDays int
}

func NewHandler(reminderOffsetDays int) *Handler {
	return &Handler{reminderOffsetDays: reminderOffsetDays}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/followups/methods", h.ListMethods)
	api.POST("/followups/schedule", h.ComputeSchedule)
}

func (h *Handler) ListMethods(c echo.Context) error {
	return c.JSON(http.StatusOK, Methods())
}

type scheduleRequest struct {
	MethodID           string `json:"method_id"`
	AdministrationDate string `json:"administration_date"` // YYYY-MM-DD, defaults to today
}

// ComputeSchedule is the only place the real clock enters the follow-up
// calculation.
func (h *Handler) ComputeSchedule(c echo.Context) error {
	var req scheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.MethodID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "method_id is required")
	}

	today := time.Now()
	administered := today
	if req.AdministrationDate != "" {
		parsed, err := time.Parse("2006-01-02", req.AdministrationDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "administration_date must be YYYY-MM-DD")
		}
		administered = parsed
	}

	schedule, ok := Compute(req.MethodID, administered, today, h.reminderOffsetDays)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown method: "+req.MethodID)
	}
	return c.JSON(http.StatusOK, schedule)
}
