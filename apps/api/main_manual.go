package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"

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

func startManual() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	dbLogger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	dbLogger.Enable(!conf.Debug)

	// set up DB
	ds, err := seed.Load()
	if err != nil {
		dbLogger.Fatal(fmt.Sprintf("loading dataset: %v", err), err)
	}
	db := inmemdb.Open(ds)

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf, logger)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	validate := validator.New()
	translator := core.NewTranslator()
	initValidators(validate, translator)

	tutorSvc := tutor.NewService(inmemdb.NewTutorRepository(db))
	walletSvc := wallet.NewService(inmemdb.NewWalletRepository(db), conf)
	calendarSvc := calendar.NewService(inmemdb.NewSessionRepository(db), conf)
	classSvc := groupclass.NewService(inmemdb.NewClassRepository(db))
	sessionSvc := session.NewService(inmemdb.NewUISessionRepository(db), conf)

	deps := &echoapi.Deps{
		SessionSvc:   sessionSvc,
		TutorSvc:     tutorSvc,
		BookingSvc:   booking.NewService(tutorSvc, walletSvc, calendarSvc, mailSvc, conf, logger),
		CalendarSvc:  calendarSvc,
		MessageSvc:   message.NewService(inmemdb.NewMessageRepository(db), validate),
		WalletSvc:    walletSvc,
		ClassSvc:     classSvc,
		RecordingSvc: recording.NewService(inmemdb.NewRecordingRepository(db)),
		DashboardSvc: dashboard.NewService(tutorSvc, classSvc, calendarSvc),
	}

	serve(conf, logger, sessionSvc, echoapi.NewServer(conf, logger, validate, translator, deps))
}
