package main

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	dig_container "github.com/trezcool/tutormate/apps/api/di/dig"
	echoapi "github.com/trezcool/tutormate/apps/api/echo"
	"github.com/trezcool/tutormate/core"
	"github.com/trezcool/tutormate/core/session"
)

func startWithDig() {
	c := dig_container.New()

	must(c.Invoke(func(
		conf *core.Config,
		apiLogger core.Logger,
		validate *validator.Validate,
		translator ut.Translator,
		sessionSvc *session.Service,
		server *echoapi.Server,
	) {
		initValidators(validate, translator)
		serve(conf, apiLogger, sessionSvc, server)
	}))
}
