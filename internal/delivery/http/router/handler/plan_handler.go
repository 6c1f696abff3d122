package handler

import (
	"log/slog"
	"net/http"

	"brandsafe/internal/delivery/http/response"
	"brandsafe/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlanHandler holds dependencies for subscription-plan handlers.
type PlanHandler struct {
	uc     usecase.PlanUsecase
	logger *slog.Logger
}

// NewPlanHandler is the constructor for PlanHandler, injected by Fx.
func NewPlanHandler(uc usecase.PlanUsecase, logger *slog.Logger) *PlanHandler {
	return &PlanHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListPlans returns the available subscription plans.
func (h *PlanHandler) ListPlans(c echo.Context) error {
	plans, err := h.uc.ListPlans(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	type planView struct {
		Name     string   `json:"name"`
		Price    string   `json:"price"`
		Features []string `json:"features"`
	}

	views := make([]planView, 0, len(plans))
	for _, plan := range plans {
		views = append(views, planView{
			Name:     plan.Name,
			Price:    plan.Price,
			Features: plan.Features,
		})
	}

	return response.Success(c, http.StatusOK, echo.Map{"plans": views}, "Plans retrieved")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
