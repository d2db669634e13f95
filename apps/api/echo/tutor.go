package echoapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/tutormate/core"
	"github.com/trezcool/tutormate/core/session"
	"github.com/trezcool/tutormate/core/tutor"
)

type tutorApi struct {
	sessSvc  *session.Service
	svc      *tutor.Service
	validate *validator.Validate
}

func registerTutorAPI(
	g *echo.Group,
	auth echo.MiddlewareFunc,
	sessSvc *session.Service,
	svc *tutor.Service,
	validate *validator.Validate,
) {
	api := tutorApi{sessSvc: sessSvc, svc: svc, validate: validate}

	tg := g.Group("/tutors", auth)
	tg.GET("", api.discover)
	tg.GET("/:id", api.retrieve)
	tg.POST("/:id/save", api.toggleSaved)

	cg := g.Group("/criteria", auth)
	cg.GET("", api.criteria)
	cg.PUT("", api.updateCriteria)
	cg.DELETE("", api.resetCriteria)
	cg.POST("/departments/:dept", api.toggleDepartment)
}

// Handlers

// discover runs discovery with the session criteria, overridden by any criteria given as query params.
func (api *tutorApi) discover(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	crit, err := bindCriteria(ctx, sess.Criteria)
	if err != nil {
		return err
	}
	if err := api.validateCriteria(&crit); err != nil {
		return err
	}

	res, err := api.svc.Discover(crit)
	if err != nil {
		return errors.Wrap(err, "discovering tutors")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *tutorApi) retrieve(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	prof, err := api.svc.Profile(ctx.Param("id"), ctx.QueryParam("date"))
	if err != nil {
		return errors.Wrap(err, "finding tutor profile")
	}
	prof.Saved = sess.Saved[prof.Tutor.ID]
	return ctx.JSON(http.StatusOK, prof)
}

func (api *tutorApi) toggleSaved(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	t, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding tutor")
	}

	sess, saved := sess.ToggleSaved(t.ID)
	if _, err = saveContextSession(ctx, api.sessSvc, sess); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, SavedResponse{TutorID: t.ID, Saved: saved})
}

func (api *tutorApi) criteria(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newCriteriaResponse(sess.Criteria))
}

func (api *tutorApi) updateCriteria(ctx echo.Context) error {
	crit := tutor.DefaultCriteria()
	if err := ctx.Bind(&crit); err != nil {
		return errors.Wrap(err, "binding to Criteria")
	}
	if err := api.validateCriteria(&crit); err != nil {
		return err
	}
	return api.saveCriteria(ctx, crit)
}

func (api *tutorApi) resetCriteria(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	crit := sess.Criteria
	crit.Reset()
	return api.saveCriteria(ctx, crit)
}

func (api *tutorApi) toggleDepartment(ctx echo.Context) error {
	dept := core.CleanString(ctx.Param("dept"))
	if !core.IsDepartment(dept) {
		return core.NewFieldValidationError("department", "unknown department")
	}
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	crit := sess.Criteria
	crit.ToggleDepartment(dept)
	return api.saveCriteria(ctx, crit)
}

func (api *tutorApi) saveCriteria(ctx echo.Context, crit tutor.Criteria) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	sess.Criteria = crit
	if sess, err = saveContextSession(ctx, api.sessSvc, sess); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newCriteriaResponse(sess.Criteria))
}

func (api *tutorApi) validateCriteria(crit *tutor.Criteria) error {
	return crit.Validate(api.validate)
}

// bindCriteria overrides base with the criteria given as query params.
func bindCriteria(ctx echo.Context, base tutor.Criteria) (tutor.Criteria, error) {
	params := ctx.QueryParams()
	crit := base

	if depts, ok := params["department"]; ok {
		crit.Departments = nil
		for _, d := range depts {
			crit.Departments = append(crit.Departments, strings.Split(d, ",")...)
		}
	}
	if q, ok := params["query"]; ok && len(q) > 0 {
		crit.Query = q[0]
	}
	if s, ok := params["sort"]; ok && len(s) > 0 {
		crit.SortBy = tutor.SortKey(s[0])
	}

	floats := []struct {
		param string
		dst   *float64
	}{
		{"min_price", &crit.PriceRange.Min},
		{"max_price", &crit.PriceRange.Max},
		{"min_rating", &crit.MinRating},
	}
	for _, f := range floats {
		if v := ctx.QueryParam(f.param); v != "" {
			n, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return base, core.NewFieldValidationError(f.param, "must be a number")
			}
			*f.dst = n
		}
	}

	flags := []struct {
		param string
		dst   *bool
	}{
		{"verified", &crit.VerifiedOnly},
		{"group_classes", &crit.GroupClassesOnly},
		{"recordings", &crit.RecordingsAvailable},
	}
	for _, f := range flags {
		if v := ctx.QueryParam(f.param); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return base, core.NewFieldValidationError(f.param, "must be a boolean")
			}
			*f.dst = b
		}
	}
	return crit, nil
}

type (
	SavedResponse struct {
		TutorID string `json:"tutor_id"`
		Saved   bool   `json:"saved"`
	}

	CriteriaResponse struct {
		tutor.Criteria
		ActiveFilters int    `json:"active_filters"`
		SortLabel     string `json:"sort_label"`
	}
)

func newCriteriaResponse(crit tutor.Criteria) CriteriaResponse {
	return CriteriaResponse{
		Criteria:      crit,
		ActiveFilters: crit.ActiveFilterCount(),
		SortLabel:     crit.SortBy.Label(),
	}
}
