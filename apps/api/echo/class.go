package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/tutormate/core/groupclass"
	"github.com/trezcool/tutormate/core/recording"
	"github.com/trezcool/tutormate/core/session"
)

type classApi struct {
	sessSvc *session.Service
	svc     *groupclass.Service
	recSvc  *recording.Service
}

func registerClassAPI(
	g *echo.Group,
	auth echo.MiddlewareFunc,
	sessSvc *session.Service,
	svc *groupclass.Service,
	recSvc *recording.Service,
) {
	api := classApi{sessSvc: sessSvc, svc: svc, recSvc: recSvc}

	cg := g.Group("/group-classes", auth)
	cg.GET("", api.queryClasses)
	cg.POST("/:id/join", api.join)

	rg := g.Group("/recordings", auth)
	rg.GET("", api.queryRecordings)
	rg.GET("/:id", api.play)
}

// Handlers

func (api *classApi) queryClasses(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	classes, err := api.svc.Query(ctx.QueryParam("department"), sess.Joined)
	if err != nil {
		return errors.Wrap(err, "querying group classes")
	}
	return ctx.JSON(http.StatusOK, classes)
}

func (api *classApi) join(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	listing, err := api.svc.Join(ctx.Param("id"), sess.Joined)
	if err != nil {
		return errors.Wrap(err, "joining group class")
	}
	if _, err := saveContextSession(ctx, api.sessSvc, sess.Join(listing.ID)); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, listing)
}

func (api *classApi) queryRecordings(ctx echo.Context) error {
	lib, err := api.recSvc.Query(ctx.QueryParam("department"), ctx.QueryParam("search"))
	if err != nil {
		return errors.Wrap(err, "querying recordings")
	}
	return ctx.JSON(http.StatusOK, lib)
}

func (api *classApi) play(ctx echo.Context) error {
	rec, err := api.recSvc.Play(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding recording")
	}
	return ctx.JSON(http.StatusOK, rec)
}
