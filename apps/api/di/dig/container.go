package dig_container

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/trezcool/tutormate/apps/api/echo"
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
	emailsvc "github.com/trezcool/tutormate/services/email"
	logsvc "github.com/trezcool/tutormate/services/logger"
	inmemdb "github.com/trezcool/tutormate/storage/database/inmem"
	"github.com/trezcool/tutormate/storage/seed"
)

type DBLoggerParam struct {
	dig.In
	Logger core.Logger `name:"dbLogger"`
}

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "API : ", log.LstdFlags)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newDBLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newDB(loggerParam DBLoggerParam) *inmemdb.DB {
	ds, err := seed.Load()
	if err != nil {
		loggerParam.Logger.Fatal(fmt.Sprintf("loading dataset: %v", err), err)
	}
	loggerParam.Logger.Info(fmt.Sprintf("dataset loaded: %d tutors, %d sessions", len(ds.Tutors), len(ds.Sessions)))
	return inmemdb.Open(ds)
}

func newEmailService(conf *core.Config, logger core.Logger) core.EmailService {
	if conf.Debug {
		return emailsvc.NewConsoleService(conf, logger)
	}
	return emailsvc.NewSendgridService(conf, logger)
}

func newBookingService(
	tutorSvc *tutor.Service,
	walletSvc *wallet.Service,
	calendarSvc *calendar.Service,
	mailSvc core.EmailService,
	conf *core.Config,
	logger core.Logger,
) *booking.Service {
	return booking.NewService(tutorSvc, walletSvc, calendarSvc, mailSvc, conf, logger)
}

func newDashboardService(tutorSvc *tutor.Service, classSvc *groupclass.Service, calendarSvc *calendar.Service) *dashboard.Service {
	return dashboard.NewService(tutorSvc, classSvc, calendarSvc)
}

type depsParam struct {
	dig.In

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

func newDeps(p depsParam) *echoapi.Deps {
	return &echoapi.Deps{
		SessionSvc:   p.SessionSvc,
		TutorSvc:     p.TutorSvc,
		BookingSvc:   p.BookingSvc,
		CalendarSvc:  p.CalendarSvc,
		MessageSvc:   p.MessageSvc,
		WalletSvc:    p.WalletSvc,
		ClassSvc:     p.ClassSvc,
		RecordingSvc: p.RecordingSvc,
		DashboardSvc: p.DashboardSvc,
	}
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newDBLogger, dig.Name("dbLogger")))
	must(c.Provide(newDB))
	must(c.Provide(newEmailService))
	must(c.Provide(validator.New))
	must(c.Provide(core.NewTranslator))

	// repositories
	must(c.Provide(inmemdb.NewTutorRepository))
	must(c.Provide(inmemdb.NewWalletRepository))
	must(c.Provide(inmemdb.NewSessionRepository))
	must(c.Provide(inmemdb.NewClassRepository))
	must(c.Provide(inmemdb.NewRecordingRepository))
	must(c.Provide(inmemdb.NewMessageRepository))
	must(c.Provide(inmemdb.NewUISessionRepository))

	// services
	must(c.Provide(session.NewService))
	must(c.Provide(tutor.NewService))
	must(c.Provide(wallet.NewService))
	must(c.Provide(calendar.NewService))
	must(c.Provide(groupclass.NewService))
	must(c.Provide(recording.NewService))
	must(c.Provide(message.NewService))
	must(c.Provide(newBookingService))
	must(c.Provide(newDashboardService))

	must(c.Provide(newDeps))
	must(c.Provide(echoapi.NewServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
