package http

import (
	"net/http"

	mw "kredinou/internal/adapter/middleware"
	"kredinou/internal/usecase/wallet"

	"github.com/labstack/echo/v4"
)

type WalletHandler struct{ uc *wallet.Usecase }

func NewWalletHandler(uc *wallet.Usecase) *WalletHandler { return &WalletHandler{uc: uc} }

// Balance syncs wallets with completed disbursements, then returns them.
func (h *WalletHandler) Balance(c echo.Context) error {
	res, err := h.uc.Sync(c.Request().Context(), mw.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
