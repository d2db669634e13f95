package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/tutormate/core/booking"
	"github.com/trezcool/tutormate/core/session"
)

type bookingApi struct {
	sessSvc *session.Service
	svc     *booking.Service
}

func registerBookingAPI(g *echo.Group, auth echo.MiddlewareFunc, sessSvc *session.Service, svc *booking.Service) {
	api := bookingApi{sessSvc: sessSvc, svc: svc}

	bg := g.Group("/booking", auth, bookingMiddleware)
	bg.GET("", api.retrieve)
	bg.POST("/select", api.selectSlot)
	bg.POST("/continue", api.next)
	bg.POST("/back", api.back)
}

// bookingMiddleware rejects the requests of sessions that have not entered the booking page.
func bookingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		sess, err := getContextSession(ctx)
		if err != nil {
			return err
		}
		if sess.Booking == nil {
			return errNoBooking
		}
		return next(ctx)
	}
}

// Handlers

func (api *bookingApi) retrieve(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	return api.respond(ctx, *sess.Booking)
}

func (api *bookingApi) selectSlot(ctx echo.Context) error {
	var data SelectSlotRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SelectSlotRequest")
	}
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	w, err := sess.Booking.Select(data.Date, data.Time)
	if err != nil {
		return err
	}
	return api.save(ctx, sess, w)
}

func (api *bookingApi) next(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	w, err := api.svc.Continue(*sess.Booking, sess.Student())
	if err != nil {
		return errors.Wrap(err, "continuing booking")
	}
	return api.save(ctx, sess, w)
}

func (api *bookingApi) back(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	w, err := sess.Booking.Back()
	if err != nil {
		return err
	}
	return api.save(ctx, sess, w)
}

func (api *bookingApi) save(ctx echo.Context, sess session.Session, w booking.Wizard) error {
	sess.Booking = &w
	if _, err := saveContextSession(ctx, api.sessSvc, sess); err != nil {
		return err
	}
	return api.respond(ctx, w)
}

func (api *bookingApi) respond(ctx echo.Context, w booking.Wizard) error {
	sum, err := api.svc.Summary(w)
	if err != nil {
		return errors.Wrap(err, "summarizing booking")
	}
	return ctx.JSON(http.StatusOK, sum)
}

type SelectSlotRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}
