package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/tutormate/core/navigation"
	"github.com/trezcool/tutormate/core/session"
)

type viewApi struct {
	svc *session.Service
}

func registerViewAPI(g *echo.Group, auth echo.MiddlewareFunc, svc *session.Service) {
	api := viewApi{svc: svc}

	g.GET("/nav", api.nav, auth)

	vg := g.Group("/view", auth)
	vg.GET("", api.retrieve)
	vg.POST("/navigate", api.navigate)
	vg.POST("/back", api.back)
}

// Handlers

func (api *viewApi) retrieve(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newViewResponse(sess))
}

func (api *viewApi) navigate(ctx echo.Context) error {
	var data NavigateRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NavigateRequest")
	}
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}

	sess, err = saveContextSession(ctx, api.svc, sess.Navigate(data.Page, data.Data))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newViewResponse(sess))
}

func (api *viewApi) back(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	sess, err = saveContextSession(ctx, api.svc, sess.Back())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newViewResponse(sess))
}

func (api *viewApi) nav(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, NavResponse{
		Visible:     navigation.ShowNavBar(sess.Nav.Current),
		Current:     sess.Nav.Current,
		MainMenu:    navigation.MainMenu(),
		AccountMenu: navigation.AccountMenu(),
	})
}

type (
	NavigateRequest struct {
		Page navigation.Page  `json:"page"`
		Data *navigation.Data `json:"data"`
	}

	// ViewResponse tells the client which page to draw, and with what.
	ViewResponse struct {
		Page       navigation.Page  `json:"page"`
		View       navigation.View  `json:"view"`
		Navigation navigation.State `json:"navigation"`
	}

	NavResponse struct {
		Visible     bool                 `json:"visible"`
		Current     navigation.Page      `json:"current"`
		MainMenu    []navigation.NavItem `json:"main_menu"`
		AccountMenu []navigation.NavItem `json:"account_menu"`
	}
)

func newViewResponse(sess session.Session) ViewResponse {
	view := sess.Nav.View()
	return ViewResponse{
		Page:       view.Page(),
		View:       view,
		Navigation: sess.Nav,
	}
}
