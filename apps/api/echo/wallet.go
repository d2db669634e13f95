package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/tutormate/core/wallet"
)

type walletApi struct {
	svc *wallet.Service
}

func registerWalletAPI(g *echo.Group, auth echo.MiddlewareFunc, svc *wallet.Service) {
	api := walletApi{svc: svc}

	wg := g.Group("/wallet", auth)
	wg.GET("", api.retrieve)
	wg.POST("/deposits", api.deposit)
	wg.POST("/withdrawals", api.withdraw)
}

// Handlers

func (api *walletApi) retrieve(ctx echo.Context) error {
	w, err := api.svc.Summary()
	if err != nil {
		return errors.Wrap(err, "getting wallet")
	}
	return ctx.JSON(http.StatusOK, WalletResponse{Wallet: w, QuickAmounts: wallet.QuickAmounts})
}

func (api *walletApi) deposit(ctx echo.Context) error {
	var data AmountRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AmountRequest")
	}
	tx, err := api.svc.AddFunds(data.Amount)
	if err != nil {
		return errors.Wrap(err, "adding funds")
	}
	return ctx.JSON(http.StatusCreated, tx)
}

func (api *walletApi) withdraw(ctx echo.Context) error {
	var data AmountRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AmountRequest")
	}
	tx, err := api.svc.Withdraw(data.Amount)
	if err != nil {
		return errors.Wrap(err, "requesting withdrawal")
	}
	return ctx.JSON(http.StatusCreated, tx)
}

type (
	AmountRequest struct {
		Amount float64 `json:"amount"`
	}

	WalletResponse struct {
		wallet.Wallet
		QuickAmounts []float64 `json:"quick_amounts"`
	}
)
