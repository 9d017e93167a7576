package catalog

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/afyachat/afyachat/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/catalog/symptoms", h.ListSymptoms)
	api.GET("/catalog/symptoms/:name", h.GetSymptom)
	api.GET("/catalog/conditions", h.ListConditions)
	api.GET("/catalog/medications", h.ListMedications)
}

func (h *Handler) ListSymptoms(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total := h.svc.ListSymptoms(pg.Limit, pg.Offset)
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg))
}

func (h *Handler) GetSymptom(c echo.Context) error {
	entry, ok := h.svc.Catalog().Symptom(c.Param("name"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "symptom not found")
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *Handler) ListConditions(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total := h.svc.ListConditions(pg.Limit, pg.Offset)
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg))
}

func (h *Handler) ListMedications(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total := h.svc.ListMedications(pg.Limit, pg.Offset)
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg))
}
