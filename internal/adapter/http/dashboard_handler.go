package http

import (
	"net/http"

	"kredinou/internal/usecase/dashboard"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct{ uc *dashboard.Usecase }

func NewDashboardHandler(uc *dashboard.Usecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) Summary(c echo.Context) error {
	sum, err := h.uc.Summary(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, sum)
}

func (h *DashboardHandler) Chart(c echo.Context) error {
	data, err := h.uc.Chart(c.Request().Context(), intQuery(c, "days", 0))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, data)
}
