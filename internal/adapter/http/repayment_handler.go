package http

import (
	"net/http"

	mw "kredinou/internal/adapter/middleware"
	"kredinou/internal/usecase/repayment"

	"github.com/labstack/echo/v4"
)

type RepaymentHandler struct{ uc *repayment.Usecase }

func NewRepaymentHandler(uc *repayment.Usecase) *RepaymentHandler {
	return &RepaymentHandler{uc: uc}
}

type submitRepaymentReq struct {
	LoanID    string  `json:"loan_id"   validate:"required,hex32"`
	Amount    float64 `json:"amount"    validate:"required,gt=0,dec2"`
	Method    string  `json:"method"    validate:"required,oneof=natcash moncash qr_code"`
	Reference string  `json:"reference" validate:"required"`
	ProofURL  string  `json:"proof_url" validate:"omitempty,url"`
}

func (h *RepaymentHandler) Submit(c echo.Context) error {
	var req submitRepaymentReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.Submit(c.Request().Context(), repayment.SubmitInput{
		UserID:    mw.UserID(c),
		LoanID:    req.LoanID,
		Amount:    req.Amount,
		Method:    req.Method,
		Reference: req.Reference,
		ProofURL:  req.ProofURL,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// LoanStatus reports principal, interest, late fees and what is still owed.
func (h *RepaymentHandler) LoanStatus(c echo.Context) error {
	dto, err := h.uc.LoanStatus(c.Request().Context(), mw.UserID(c), c.Param("loan_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RepaymentHandler) History(c echo.Context) error {
	offset, limit := pageParams(c)
	items, total, err := h.uc.History(c.Request().Context(), mw.UserID(c), offset, limit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"repayments": items, "total": total})
}

// ---- admin surface ----

func (h *RepaymentHandler) AdminPending(c echo.Context) error {
	offset, limit := pageParams(c)
	items, total, err := h.uc.ListPending(c.Request().Context(), offset, limit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"repayments": items, "total": total})
}

func (h *RepaymentHandler) AdminLoanStatus(c echo.Context) error {
	dto, err := h.uc.LoanStatus(c.Request().Context(), "", c.Param("loan_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RepaymentHandler) Verify(c echo.Context) error {
	res, err := h.uc.Verify(c.Request().Context(), c.Param("repayment_id"), mw.AdminID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

type rejectRepaymentReq struct {
	Reason string `json:"reason" validate:"required"`
}

func (h *RepaymentHandler) Reject(c echo.Context) error {
	var req rejectRepaymentReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.Reject(c.Request().Context(), c.Param("repayment_id"), mw.AdminID(c), req.Reason)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
