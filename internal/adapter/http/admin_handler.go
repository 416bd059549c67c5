package http

import (
	"net/http"

	mw "kredinou/internal/adapter/middleware"
	"kredinou/internal/usecase/admin"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct{ uc *admin.Usecase }

func NewAdminHandler(uc *admin.Usecase) *AdminHandler { return &AdminHandler{uc: uc} }

type adminLoginReq struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AdminHandler) Login(c echo.Context) error {
	var req adminLoginReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	res, err := h.uc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

type changeCredentialsReq struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewEmail        string `json:"new_email"        validate:"omitempty,email"`
	NewPassword     string `json:"new_password"     validate:"omitempty,min=12"`
}

func (h *AdminHandler) ChangeCredentials(c echo.Context) error {
	var req changeCredentialsReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	if req.NewEmail == "" && req.NewPassword == "" {
		return badRequest(c, "nothing to change")
	}
	dto, err := h.uc.ChangeCredentials(c.Request().Context(), admin.ChangeCredentialsInput{
		AdminID:         mw.AdminID(c),
		CurrentPassword: req.CurrentPassword,
		NewEmail:        req.NewEmail,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AdminHandler) VerifyDocument(c echo.Context) error {
	dto, err := h.uc.VerifyDocument(c.Request().Context(), mw.AdminID(c), c.Param("document_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
