package main

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/tutormate/core"
	"github.com/trezcool/tutormate/core/groupclass"
	"github.com/trezcool/tutormate/core/recording"
	"github.com/trezcool/tutormate/core/tutor"
	"github.com/trezcool/tutormate/storage/database/inmem"
	"github.com/trezcool/tutormate/storage/seed"
)

var logger *log.Logger

func main() {
	logger = log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up DB
	ds, err := seed.Load()
	errAndDie(err)
	db := inmemdb.Open(ds)

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	tutor.InitValidators(validate, translator)

	// start CLI
	cli := newCommandLine(
		tutor.NewService(inmemdb.NewTutorRepository(db)),
		groupclass.NewService(inmemdb.NewClassRepository(db)),
		recording.NewService(inmemdb.NewRecordingRepository(db)),
		validate,
		translator,
		os.Stdout,
	)
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
