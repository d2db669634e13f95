package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/tutormate/core/dashboard"
	"github.com/trezcool/tutormate/core/session"
)

type dashboardApi struct {
	sessSvc *session.Service
	svc     *dashboard.Service
}

func registerDashboardAPI(g *echo.Group, auth echo.MiddlewareFunc, sessSvc *session.Service, svc *dashboard.Service) {
	api := dashboardApi{sessSvc: sessSvc, svc: svc}

	dg := g.Group("/dashboard", auth)
	dg.GET("", api.retrieve)
	dg.POST("/search", api.search)
}

// Handlers

func (api *dashboardApi) retrieve(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	dash, err := api.svc.Build(sess.Profile.FirstName)
	if err != nil {
		return errors.Wrap(err, "building dashboard")
	}
	return ctx.JSON(http.StatusOK, dash)
}

// search sets the discovery query, from the search bar or a popular skill, and moves to the tutor listing.
func (api *dashboardApi) search(ctx echo.Context) error {
	var data SearchRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SearchRequest")
	}
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	sess, err = saveContextSession(ctx, api.sessSvc, sess.Search(data.Query))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newViewResponse(sess))
}

type SearchRequest struct {
	Query string `json:"query"`
}
