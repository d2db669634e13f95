package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/tutormate/core"
	"github.com/trezcool/tutormate/core/booking"
	"github.com/trezcool/tutormate/core/calendar"
	"github.com/trezcool/tutormate/core/dashboard"
	"github.com/trezcool/tutormate/core/groupclass"
	"github.com/trezcool/tutormate/core/message"
	"github.com/trezcool/tutormate/core/recording"
	"github.com/trezcool/tutormate/core/session"
	"github.com/trezcool/tutormate/core/tutor"
	"github.com/trezcool/tutormate/core/wallet"
)

type (
	// Deps are the services the API is built on.
	Deps struct {
		SessionSvc   *session.Service
		TutorSvc     *tutor.Service
		BookingSvc   *booking.Service
		CalendarSvc  *calendar.Service
		MessageSvc   *message.Service
		WalletSvc    *wallet.Service
		ClassSvc     *groupclass.Service
		RecordingSvc *recording.Service
		DashboardSvc *dashboard.Service
	}

	Server struct {
		app        *echo.Echo
		conf       *core.Config
		logger     core.Logger
		validate   *validator.Validate
		translator ut.Translator
		deps       *Deps
		errors     chan error
		shutdown   chan os.Signal
	}
)

func NewServer(
	conf *core.Config,
	logger core.Logger,
	validate *validator.Validate,
	translator ut.Translator,
	deps *Deps,
) *Server {
	s := &Server{
		app:        echo.New(),
		conf:       conf,
		logger:     logger,
		validate:   validate,
		translator: translator,
		deps:       deps,
		errors:     make(chan error, 1),
		shutdown:   make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *Server) setup() {
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(s.conf.Debug || s.conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.logger, s.translator, s.SignalShutdown)
	s.app.Debug = s.conf.Debug && !s.conf.TestMode
	s.app.HideBanner = true

	s.app.GET("/", s.home)

	v1 := s.app.Group("/v1")
	auth := sessionAuth(s.conf, s.deps.SessionSvc)

	registerSessionAPI(v1, auth, s.conf, s.deps.SessionSvc)
	registerViewAPI(v1, auth, s.deps.SessionSvc)
	registerTutorAPI(v1, auth, s.deps.SessionSvc, s.deps.TutorSvc, s.validate)
	registerBookingAPI(v1, auth, s.deps.SessionSvc, s.deps.BookingSvc)
	registerCalendarAPI(v1, auth, s.deps.SessionSvc, s.deps.CalendarSvc)
	registerMessageAPI(v1, auth, s.deps.MessageSvc, s.validate)
	registerWalletAPI(v1, auth, s.deps.WalletSvc)
	registerClassAPI(v1, auth, s.deps.SessionSvc, s.deps.ClassSvc, s.deps.RecordingSvc)
	registerDashboardAPI(v1, auth, s.deps.SessionSvc, s.deps.DashboardSvc)
	registerProfileAPI(v1, auth, s.deps.SessionSvc, s.validate)
}

// Start listens on the configured address. Listening errors are reported on Errors.
func (s *Server) Start() {
	if err := s.app.Start(s.conf.Server.Address); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *Server) Errors() <-chan error { return s.errors }

func (s *Server) ShutdownSignal() <-chan os.Signal { return s.shutdown }

// SignalShutdown asks the process owning the server to shut it down gracefully.
func (s *Server) SignalShutdown() {
	s.shutdown <- syscall.SIGTERM
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *Server) home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to "+s.conf.AppName+" API!")
}
