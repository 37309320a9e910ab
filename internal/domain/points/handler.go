package points

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/stridecare/recovery/internal/platform/apperr"
	"github.com/stridecare/recovery/internal/platform/auth"
	"github.com/stridecare/recovery/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/insights/complete", h.CompleteInsight)
	api.POST("/recovery-points/mood", h.LogMood)

	self := auth.RequireSelfOrRole("patientId", "clinician")
	api.GET("/recovery-points/weekly/:patientId", h.WeeklyAggregate, self)
	api.GET("/recovery-points/:patientId", h.ListPointEntries, self)
}

type completeRequest struct {
	PatientID uuid.UUID `json:"patient_id"`
	InsightID string    `json:"insight_id"`
}

func (h *Handler) CompleteInsight(c echo.Context) error {
	var req completeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.PatientID == uuid.Nil {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_id is required")
	}
	if req.InsightID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "insight_id is required")
	}
	if pid := auth.PatientIDFromContext(c.Request().Context()); pid != "" && pid != req.PatientID.String() {
		return echo.NewHTTPError(http.StatusForbidden, "cannot complete for another patient")
	}

	completion, err := h.svc.CompleteInsight(c.Request().Context(), req.PatientID, req.InsightID)
	if err != nil {
		return echo.NewHTTPError(apperr.Status(err), err.Error())
	}
	return c.JSON(http.StatusOK, completion)
}

type moodRequest struct {
	PatientID uuid.UUID `json:"patient_id"`
	Mood      string    `json:"mood"`
	Amount    int       `json:"amount"`
}

func (h *Handler) LogMood(c echo.Context) error {
	var req moodRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.PatientID == uuid.Nil {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_id is required")
	}
	if pid := auth.PatientIDFromContext(c.Request().Context()); pid != "" && pid != req.PatientID.String() {
		return echo.NewHTTPError(http.StatusForbidden, "cannot log for another patient")
	}

	entry, err := h.svc.LogMood(c.Request().Context(), req.PatientID, req.Mood, req.Amount)
	if err != nil {
		return echo.NewHTTPError(apperr.Status(err), err.Error())
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *Handler) WeeklyAggregate(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("patientId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}

	ref := time.Now().UTC()
	if raw := c.QueryParam("week_start"); raw != "" {
		ref, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "week_start must be RFC3339")
		}
	}

	agg, err := h.svc.WeeklyAggregate(c.Request().Context(), patientID, ref)
	if err != nil {
		return echo.NewHTTPError(apperr.Status(err), err.Error())
	}
	return c.JSON(http.StatusOK, agg)
}

func (h *Handler) ListPointEntries(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("patientId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListPointEntries(c.Request().Context(), patientID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(apperr.Status(err), err.Error())
	}
	if items == nil {
		items = []*RecoveryPointEntry{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
