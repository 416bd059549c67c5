package http

import (
	"net/http"

	"kredinou/internal/usecase/user"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct{ uc *user.Usecase }

func NewAuthHandler(uc *user.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

type registerReq struct {
	FirstName    string `json:"first_name"     validate:"required"`
	MiddleName   string `json:"middle_name"`
	LastName     string `json:"last_name"      validate:"required"`
	Email        string `json:"email"          validate:"required,email"`
	Phone        string `json:"phone"          validate:"required,phone"`
	Password     string `json:"password"       validate:"required,min=8"`
	Department   string `json:"department"`
	Commune      string `json:"commune"`
	Address      string `json:"address"`
	FaceImageURL string `json:"face_image_url" validate:"omitempty,url"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	res, err := h.uc.Register(c.Request().Context(), user.RegisterInput{
		FirstName:    req.FirstName,
		MiddleName:   req.MiddleName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Password:     req.Password,
		Department:   req.Department,
		Commune:      req.Commune,
		Address:      req.Address,
		FaceImageURL: req.FaceImageURL,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

type loginReq struct {
	// Identifier is the registered email or phone number.
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"   validate:"required"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	res, err := h.uc.Login(c.Request().Context(), req.Identifier, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
