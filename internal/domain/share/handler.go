package share

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/shares", h.ListLinks)
	api.POST("/shares", h.CreateLink)
	api.DELETE("/shares/:id", h.RevokeLink)
}

func (h *Handler) CreateLink(c echo.Context) error {
	var body struct {
		Label *string `json:"label"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sc, err := h.svc.CreateLink(c.Request().Context(), body.Label)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, sc)
}

func (h *Handler) ListLinks(c echo.Context) error {
	links, err := h.svc.ListLinks(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, links)
}

func (h *Handler) RevokeLink(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.RevokeLink(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// TokenGuard protects the public read-only dashboard mirror. Requests with
// an unknown or revoked token get a 404 so the URL space stays opaque.
func (h *Handler) TokenGuard(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Param("token")
		if token == "" {
			return echo.NewHTTPError(http.StatusNotFound, "not found")
		}
		sc, ok := h.svc.Resolve(c.Request().Context(), token)
		if !ok {
			return echo.NewHTTPError(http.StatusNotFound, "not found")
		}
		c.Set("share_config", sc)
		return next(c)
	}
}
