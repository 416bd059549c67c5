package http

import (
	"errors"
	"net/http"

	adminDomain "kredinou/internal/domain/admin"
	loanDomain "kredinou/internal/domain/loan"
	notifDomain "kredinou/internal/domain/notification"
	repayDomain "kredinou/internal/domain/repayment"
	userDomain "kredinou/internal/domain/user"
	walletDomain "kredinou/internal/domain/wallet"
	withdrawalDomain "kredinou/internal/domain/withdrawal"

	"github.com/labstack/echo/v4"
)

// statusFor maps domain errors to HTTP status codes. Anything unmapped is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, userDomain.ErrNotFound),
		errors.Is(err, userDomain.ErrDocumentNotFound),
		errors.Is(err, adminDomain.ErrNotFound),
		errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, repayDomain.ErrNotFound),
		errors.Is(err, walletDomain.ErrNotFound),
		errors.Is(err, withdrawalDomain.ErrNotFound),
		errors.Is(err, notifDomain.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, userDomain.ErrBadCredentials),
		errors.Is(err, adminDomain.ErrBadCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, userDomain.ErrDuplicateEmail),
		errors.Is(err, userDomain.ErrDuplicatePhone),
		errors.Is(err, userDomain.ErrDocumentVerified),
		errors.Is(err, loanDomain.ErrOpenLoan),
		errors.Is(err, loanDomain.ErrNotPending),
		errors.Is(err, loanDomain.ErrNotApproved),
		errors.Is(err, loanDomain.ErrAlreadyDisbursed),
		errors.Is(err, loanDomain.ErrInvalidTransition),
		errors.Is(err, repayDomain.ErrNotPending),
		errors.Is(err, withdrawalDomain.ErrNotPending):
		return http.StatusConflict

	case errors.Is(err, loanDomain.ErrLimitExceeded),
		errors.Is(err, loanDomain.ErrUnknownPeriod),
		errors.Is(err, loanDomain.ErrMissingAccount),
		errors.Is(err, repayDomain.ErrLoanNotRepayable),
		errors.Is(err, repayDomain.ErrExceedsOutstanding),
		errors.Is(err, walletDomain.ErrInsufficientFunds):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// fail writes the standard error payload for a usecase error.
func fail(c echo.Context, err error) error {
	code := statusFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal error"
	}
	return c.JSON(code, ErrorResponse{Error: msg})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func validationFailed(c echo.Context, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation failed",
		Details: ToFieldErrors(err),
	})
}
