package insight

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/stridecare/recovery/internal/platform/apperr"
	"github.com/stridecare/recovery/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/patients/:id/insights", h.ListInsights, auth.RequireSelfOrRole("id", "clinician"))
	api.GET("/insights/catalog", h.GetCatalog, auth.RequireRole("admin", "clinician"))
}

func (h *Handler) ListInsights(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	items, err := h.svc.InsightsForPatient(c.Request().Context(), patientID)
	if err != nil {
		return echo.NewHTTPError(apperr.Status(err), err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"insights": items})
}

// GetCatalog returns the full loaded catalog for the clinician dashboard.
func (h *Handler) GetCatalog(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{"insights": h.svc.Catalog().Entries()})
}
