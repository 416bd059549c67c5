package http

import (
	"net/http"

	mw "kredinou/internal/adapter/middleware"
	withdrawalDomain "kredinou/internal/domain/withdrawal"
	"kredinou/internal/usecase/withdrawal"

	"github.com/labstack/echo/v4"
)

type WithdrawalHandler struct{ uc *withdrawal.Usecase }

func NewWithdrawalHandler(uc *withdrawal.Usecase) *WithdrawalHandler {
	return &WithdrawalHandler{uc: uc}
}

type requestWithdrawalReq struct {
	Amount        float64 `json:"amount"         validate:"required,gt=0,dec2"`
	Service       string  `json:"service"        validate:"required,oneof=moncash natcash"`
	AccountName   string  `json:"account_name"   validate:"required"`
	AccountNumber string  `json:"account_number" validate:"required"`
}

func (h *WithdrawalHandler) Request(c echo.Context) error {
	var req requestWithdrawalReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	res, err := h.uc.Request(c.Request().Context(), withdrawal.RequestInput{
		UserID:        mw.UserID(c),
		Amount:        req.Amount,
		Service:       req.Service,
		AccountName:   req.AccountName,
		AccountNumber: req.AccountNumber,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *WithdrawalHandler) History(c echo.Context) error {
	items, err := h.uc.History(c.Request().Context(), mw.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"withdrawals": items})
}

// ---- admin surface ----

func parseWithdrawalStatus(raw string) (withdrawalDomain.Status, bool) {
	s := withdrawalDomain.Status(raw)
	switch s {
	case withdrawalDomain.StatusPending, withdrawalDomain.StatusApproved, withdrawalDomain.StatusRejected:
		return s, true
	}
	return "", false
}

func (h *WithdrawalHandler) AdminList(c echo.Context) error {
	raw := c.QueryParam("status")
	if raw == "" {
		raw = string(withdrawalDomain.StatusPending)
	}
	status, ok := parseWithdrawalStatus(raw)
	if !ok {
		return badRequest(c, "unknown withdrawal status")
	}
	offset, limit := pageParams(c)
	list, err := h.uc.ListByStatus(c.Request().Context(), status, offset, limit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *WithdrawalHandler) AdminSummary(c echo.Context) error {
	sum, err := h.uc.Summarize(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, sum)
}

type decideWithdrawalReq struct {
	Notes string `json:"notes"`
}

func (h *WithdrawalHandler) Approve(c echo.Context) error {
	var req decideWithdrawalReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	dto, err := h.uc.Approve(c.Request().Context(), withdrawal.DecisionInput{
		WithdrawalID: c.Param("withdrawal_id"),
		AdminID:      mw.AdminID(c),
		Notes:        req.Notes,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *WithdrawalHandler) Reject(c echo.Context) error {
	var req decideWithdrawalReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.Notes == "" {
		return badRequest(c, "notes are required when rejecting")
	}
	res, err := h.uc.Reject(c.Request().Context(), withdrawal.DecisionInput{
		WithdrawalID: c.Param("withdrawal_id"),
		AdminID:      mw.AdminID(c),
		Notes:        req.Notes,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
