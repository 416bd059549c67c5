package http

import (
	"net/http"

	mw "kredinou/internal/adapter/middleware"
	loanDomain "kredinou/internal/domain/loan"
	"kredinou/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type applyLoanReq struct {
	LoanType           string  `json:"loan_type"           validate:"required"`
	Amount             float64 `json:"amount"              validate:"required,gt=0,dec2"`
	Purpose            string  `json:"purpose"`
	RepaymentPeriod    string  `json:"repayment_period"    validate:"required"`
	DisbursementMethod string  `json:"disbursement_method" validate:"required,oneof=natcash moncash qr_code"`
	AccountName        string  `json:"account_name"`
	AccountNumber      string  `json:"account_number"`
	QRCodeRef          string  `json:"qr_code_ref"`
}

func (h *LoanHandler) Apply(c echo.Context) error {
	var req applyLoanReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.Apply(c.Request().Context(), loan.ApplyInput{
		UserID:             mw.UserID(c),
		LoanType:           req.LoanType,
		Amount:             req.Amount,
		Purpose:            req.Purpose,
		RepaymentPeriod:    req.RepaymentPeriod,
		DisbursementMethod: req.DisbursementMethod,
		AccountName:        req.AccountName,
		AccountNumber:      req.AccountNumber,
		QRCodeRef:          req.QRCodeRef,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) History(c echo.Context) error {
	offset, limit := pageParams(c)
	page, err := h.uc.History(c.Request().Context(), mw.UserID(c), offset, limit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *LoanHandler) Active(c echo.Context) error {
	dto, err := h.uc.Active(c.Request().Context(), mw.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), mw.UserID(c), c.Param("loan_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ---- admin surface ----

func parseLoanStatus(raw string) (loanDomain.Status, bool) {
	s := loanDomain.Status(raw)
	switch s {
	case loanDomain.StatusPending, loanDomain.StatusApproved, loanDomain.StatusRejected,
		loanDomain.StatusDisbursed, loanDomain.StatusRepaid, loanDomain.StatusOverdue:
		return s, true
	}
	return "", false
}

func (h *LoanHandler) AdminList(c echo.Context) error {
	status, ok := parseLoanStatus(c.QueryParam("status"))
	if !ok {
		return badRequest(c, "unknown loan status")
	}
	offset, limit := pageParams(c)
	page, err := h.uc.ListByStatus(c.Request().Context(), status, offset, limit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *LoanHandler) AdminGet(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), "", c.Param("loan_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type decideLoanReq struct {
	Notes  string `json:"notes"`
	Reason string `json:"reason"`
}

func (h *LoanHandler) Approve(c echo.Context) error {
	var req decideLoanReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	res, err := h.uc.Approve(c.Request().Context(), c.Param("loan_id"), mw.AdminID(c), req.Notes)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *LoanHandler) Reject(c echo.Context) error {
	var req decideLoanReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.Reason == "" {
		return badRequest(c, "reason is required")
	}
	dto, err := h.uc.Reject(c.Request().Context(), c.Param("loan_id"), mw.AdminID(c), req.Reason)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type disburseLoanReq struct {
	TransactionID string `json:"transaction_id" validate:"required"`
}

func (h *LoanHandler) Disburse(c echo.Context) error {
	var req disburseLoanReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.Disburse(c.Request().Context(), c.Param("loan_id"), mw.AdminID(c), req.TransactionID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type updateLoanStatusReq struct {
	Status string `json:"status" validate:"required"`
}

func (h *LoanHandler) UpdateStatus(c echo.Context) error {
	var req updateLoanStatusReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	to, ok := parseLoanStatus(req.Status)
	if !ok {
		return badRequest(c, "unknown loan status")
	}
	dto, err := h.uc.UpdateStatus(c.Request().Context(), c.Param("loan_id"), mw.AdminID(c), to)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) PendingDisbursements(c echo.Context) error {
	stats, err := h.uc.PendingDisbursements(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *LoanHandler) DisbursedTotals(c echo.Context) error {
	totals, err := h.uc.DisbursedTotals(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"totals": totals})
}
