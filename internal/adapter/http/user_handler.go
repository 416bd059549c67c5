package http

import (
	"net/http"

	mw "kredinou/internal/adapter/middleware"
	"kredinou/internal/usecase/notification"
	"kredinou/internal/usecase/user"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	users  *user.Usecase
	notifs *notification.Usecase
}

func NewUserHandler(users *user.Usecase, notifs *notification.Usecase) *UserHandler {
	return &UserHandler{users: users, notifs: notifs}
}

func (h *UserHandler) Profile(c echo.Context) error {
	dto, err := h.users.Profile(c.Request().Context(), mw.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type updatePhoneReq struct {
	Phone string `json:"phone" validate:"required,phone"`
}

func (h *UserHandler) UpdatePhone(c echo.Context) error {
	var req updatePhoneReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.users.UpdatePhone(c.Request().Context(), mw.UserID(c), req.Phone)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type changePasswordReq struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

func (h *UserHandler) ChangePassword(c echo.Context) error {
	var req changePasswordReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	if err := h.users.ChangePassword(c.Request().Context(), mw.UserID(c), req.CurrentPassword, req.NewPassword); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "password updated"})
}

type addDocumentReq struct {
	Type string `json:"type" validate:"required"`
	URL  string `json:"url"  validate:"required,url"`
}

func (h *UserHandler) AddDocument(c echo.Context) error {
	var req addDocumentReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.users.AddDocument(c.Request().Context(), mw.UserID(c), req.Type, req.URL)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *UserHandler) Documents(c echo.Context) error {
	docs, err := h.users.ListDocuments(c.Request().Context(), mw.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"documents": docs})
}

func (h *UserHandler) Notifications(c echo.Context) error {
	limit := intQuery(c, "limit", 0)
	items, err := h.notifs.List(c.Request().Context(), mw.UserID(c), limit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"notifications": items})
}

func (h *UserHandler) ReadNotification(c echo.Context) error {
	id := c.Param("notification_id")
	if err := h.notifs.MarkRead(c.Request().Context(), mw.UserID(c), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "notification marked as read"})
}

// ---- admin surface ----

func (h *UserHandler) AdminList(c echo.Context) error {
	offset, limit := pageParams(c)
	page, err := h.users.List(c.Request().Context(), offset, limit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *UserHandler) AdminGet(c echo.Context) error {
	item, err := h.users.Get(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

type adminUpdateUserReq struct {
	FirstName          *string  `json:"first_name"`
	MiddleName         *string  `json:"middle_name"`
	LastName           *string  `json:"last_name"`
	Department         *string  `json:"department"`
	Commune            *string  `json:"commune"`
	Address            *string  `json:"address"`
	Status             *string  `json:"status"              validate:"omitempty,oneof=pending_verification active suspended"`
	VerificationStatus *string  `json:"verification_status" validate:"omitempty,oneof=unverified verified"`
	LoanLimit          *float64 `json:"loan_limit"          validate:"omitempty,gte=0,dec2"`
	FaceImageURL       *string  `json:"face_image_url"`
}

func (h *UserHandler) AdminUpdate(c echo.Context) error {
	var req adminUpdateUserReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.users.Update(c.Request().Context(), c.Param("user_id"), user.UpdateInput{
		FirstName:          req.FirstName,
		MiddleName:         req.MiddleName,
		LastName:           req.LastName,
		Department:         req.Department,
		Commune:            req.Commune,
		Address:            req.Address,
		Status:             req.Status,
		VerificationStatus: req.VerificationStatus,
		LoanLimit:          req.LoanLimit,
		FaceImageURL:       req.FaceImageURL,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *UserHandler) AdminDelete(c echo.Context) error {
	if err := h.users.Delete(c.Request().Context(), c.Param("user_id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user deleted"})
}
