package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/tutormate/core/message"
)

type messageApi struct {
	svc      *message.Service
	validate *validator.Validate
}

func registerMessageAPI(g *echo.Group, auth echo.MiddlewareFunc, svc *message.Service, validate *validator.Validate) {
	api := messageApi{svc: svc, validate: validate}

	cg := g.Group("/conversations", auth)
	cg.GET("", api.queryConversations)
	cg.GET("/:id/messages", api.queryMessages)
	cg.POST("/:id/messages", api.send)
}

// Handlers

func (api *messageApi) queryConversations(ctx echo.Context) error {
	convs, err := api.svc.QueryConversations(ctx.QueryParam("search"))
	if err != nil {
		return errors.Wrap(err, "querying conversations")
	}
	return ctx.JSON(http.StatusOK, convs)
}

func (api *messageApi) queryMessages(ctx echo.Context) error {
	msgs, err := api.svc.QueryMessages(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying messages")
	}
	return ctx.JSON(http.StatusOK, msgs)
}

func (api *messageApi) send(ctx echo.Context) error {
	var data message.NewMessage
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewMessage")
	}
	msg, err := api.svc.Send(ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "sending message")
	}
	return ctx.JSON(http.StatusCreated, msg)
}
