package testutil

import (
	"io"
	"log"
	"net/mail"
	"testing"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/tutormate/core"
	"github.com/trezcool/tutormate/core/profile"
	"github.com/trezcool/tutormate/core/tutor"
	"github.com/trezcool/tutormate/services/logger"
	"github.com/trezcool/tutormate/storage/database/inmem"
	"github.com/trezcool/tutormate/storage/seed"
)

// ReferenceDate is "today" for the seeded dataset.
var ReferenceDate = time.Date(2025, time.November, 24, 0, 0, 0, 0, time.UTC)

// NewConfig returns the configuration tests run with, without reading the environment.
func NewConfig() *core.Config {
	conf := &core.Config{
		Debug:            true,
		TestMode:         true,
		Env:              "TEST",
		AppName:          "TutorMate",
		SecretKey:        "test-secret",
		FrontendBaseURL:  "http://localhost:3000",
		DefaultFromEmail: mail.Address{Name: "TutorMate", Address: "noreply@tutormate.test"},
		ReferenceDate:    ReferenceDate,
	}
	conf.Server.SessionExpirationDelta = time.Hour
	return conf
}

// OpenDB returns a fresh in-memory database holding the seeded dataset.
func OpenDB(t *testing.T) *inmemdb.DB {
	ds, err := seed.Load()
	if err != nil {
		t.Fatalf("seed.Load() failed: %v", err)
	}
	return inmemdb.Open(ds)
}

// NewValidator returns a validator with every custom tag and translation registered.
func NewValidator() *validator.Validate {
	validate, _ := NewTranslatedValidator()
	return validate
}

// NewTranslatedValidator is NewValidator, along with the translator its messages are registered on.
func NewTranslatedValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	tutor.InitValidators(validate, translator)
	profile.InitValidators(validate, translator)
	return validate, translator
}

// NewLogger returns a logger that reports nothing and prints nowhere.
func NewLogger(conf *core.Config) core.Logger {
	return logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), conf)
}
