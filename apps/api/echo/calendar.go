package echoapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/tutormate/core"
	"github.com/trezcool/tutormate/core/calendar"
	"github.com/trezcool/tutormate/core/session"
)

type calendarApi struct {
	sessSvc *session.Service
	svc     *calendar.Service
}

func registerCalendarAPI(g *echo.Group, auth echo.MiddlewareFunc, sessSvc *session.Service, svc *calendar.Service) {
	api := calendarApi{sessSvc: sessSvc, svc: svc}

	g.GET("/calendar", api.retrieve, auth)
	g.GET("/calendar.ics", api.export, auth)
}

// Handlers

// retrieve shows the calendar. The year, month and view query params change what the session looks at.
func (api *calendarApi) retrieve(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}

	changed := false
	if v := ctx.QueryParam("view"); v != "" {
		view := calendar.View(v)
		if view != calendar.ViewMonth && view != calendar.ViewWeek {
			return core.NewFieldValidationError("view", "view must be month or week")
		}
		sess.Calendar, changed = view, true
	}
	if v := ctx.QueryParam("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return core.NewFieldValidationError("year", "must be a number")
		}
		sess.Month.Year, changed = year, true
	}
	if v := ctx.QueryParam("month"); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil {
			return core.NewFieldValidationError("month", "must be a number")
		}
		sess.Month.Month, changed = time.Month(month), true
	}

	resp := CalendarResponse{View: sess.Calendar, Today: api.svc.Today().Format(core.DateLayout)}
	if sess.Calendar == calendar.ViewWeek {
		week, err := api.svc.Week()
		if err != nil {
			return errors.Wrap(err, "building week")
		}
		resp.Week = &week
	} else {
		month, err := api.svc.Month(sess.Month)
		if err != nil {
			return err
		}
		resp.Month = &month
	}
	if resp.Upcoming, err = api.svc.Upcoming(); err != nil {
		return errors.Wrap(err, "querying upcoming sessions")
	}

	if changed {
		if _, err := saveContextSession(ctx, api.sessSvc, sess); err != nil {
			return err
		}
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *calendarApi) export(ctx echo.Context) error {
	ics, err := api.svc.ExportICS()
	if err != nil {
		return errors.Wrap(err, "exporting sessions")
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="sessions.ics"`)
	return ctx.Blob(http.StatusOK, "text/calendar; charset=utf-8", []byte(ics))
}

type CalendarResponse struct {
	View     calendar.View      `json:"view"`
	Today    string             `json:"today"`
	Month    *calendar.Month    `json:"month,omitempty"`
	Week     *calendar.Week     `json:"week,omitempty"`
	Upcoming []calendar.Session `json:"upcoming_sessions"`
}
