package main

import (
	"context"
	"expvar"
	"fmt"
	"net/http"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/trezcool/tutormate/apps/api/echo"
	"github.com/trezcool/tutormate/core"
	"github.com/trezcool/tutormate/core/profile"
	"github.com/trezcool/tutormate/core/session"
	"github.com/trezcool/tutormate/core/tutor"
)

// sweepInterval is how often idle UI sessions are dropped.
const sweepInterval = 10 * time.Minute

func initValidators(validate *validator.Validate, translator ut.Translator) {
	core.InitValidators(validate, translator)
	tutor.InitValidators(validate, translator)
	profile.InitValidators(validate, translator)
}

// serve runs the debug service, the session sweeper and the API server until a shutdown signal or a server error.
func serve(conf *core.Config, logger core.Logger, sessionSvc *session.Service, server *echoapi.Server) {
	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	// =========================================================================
	// Start Debug Service
	//
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)
	expired := expvar.NewInt("expired_sessions")

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start Session Sweeper

	ctx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()

	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := sessionSvc.Expire()
				if err != nil {
					logger.Error(fmt.Sprintf("expiring sessions: %v", err), err)
					continue
				}
				if n > 0 {
					expired.Add(int64(n))
					logger.Info(fmt.Sprintf("%d idle sessions expired", n))
				}
			}
		}
	}()

	// =========================================================================
	// Start API Service

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shut down and shed load
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}
