package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/tutormate/core/profile"
	"github.com/trezcool/tutormate/core/session"
)

type profileApi struct {
	sessSvc  *session.Service
	validate *validator.Validate
}

func registerProfileAPI(g *echo.Group, auth echo.MiddlewareFunc, sessSvc *session.Service, validate *validator.Validate) {
	api := profileApi{sessSvc: sessSvc, validate: validate}

	pg := g.Group("/profile", auth)
	pg.GET("", api.retrieve)
	pg.PUT("", api.update)
}

// Handlers

func (api *profileApi) retrieve(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sess.Profile)
}

func (api *profileApi) update(ctx echo.Context) error {
	var data profile.UpdateProfile
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateProfile")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	sess.Profile = sess.Profile.Apply(data)
	if sess, err = saveContextSession(ctx, api.sessSvc, sess); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sess.Profile)
}
