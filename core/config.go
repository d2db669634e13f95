package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Debug            bool
	TestMode         bool
	Env              string
	Build            string
	AppName          string
	SecretKey        string
	WorkDir          string
	FrontendBaseURL  string
	DefaultFromEmail mail.Address
	SendgridAPIKey   string
	RollbarToken     string

	// ReferenceDate is the day the seeded dataset treats as "today" (calendar, bookings).
	ReferenceDate time.Time

	Server struct {
		Address                string
		Host                   string
		DebugHost              string
		ShutdownTimeout        time.Duration
		SessionExpirationDelta time.Duration
	}
}

// NewConfig loads the configuration from defaults, the environment and `config/.env.<env>`.
func NewConfig() *Config {
	vpr := viper.New()

	// defaults
	vpr.SetTypeByDefaultValue(true)
	vpr.SetDefault("debug", true)
	vpr.SetDefault("testMode", false)
	vpr.SetDefault("build", "develop")
	vpr.SetDefault("appName", "TutorMate")
	vpr.SetDefault("secretKey", "s3x!w2v0q$9a7=k+d^p1c@(y)r8u&mh_4fz6tnj%lgb*ei5")
	vpr.SetDefault("frontendBaseURL", "http://localhost:3000")
	vpr.SetDefault("defaultFromEmail", "TutorMate <noreply@localhost>")
	vpr.SetDefault("sendgridApiKey", "")
	vpr.SetDefault("rollbarToken", "")
	vpr.SetDefault("referenceDate", "2025-11-24")
	vpr.SetDefault("serverAddress", ":8000")
	vpr.SetDefault("serverHost", "localhost")
	vpr.SetDefault("serverDebugHost", ":4000")
	vpr.SetDefault("serverShutdownTimeout", 5*time.Second)
	vpr.SetDefault("serverSessionExpirationDelta", 24*time.Hour)

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		vpr.SetDefault("testMode", true)
	}
	vpr.SetEnvPrefix(env)

	workDir := Getwd()

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(workDir, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	vpr.AutomaticEnv()

	conf := &Config{
		Debug:           vpr.GetBool("debug"),
		TestMode:        vpr.GetBool("testMode"),
		Env:             env,
		Build:           vpr.GetString("build"),
		AppName:         vpr.GetString("appName"),
		SecretKey:       vpr.GetString("secretKey"),
		WorkDir:         workDir,
		FrontendBaseURL: vpr.GetString("frontendBaseURL"),
		SendgridAPIKey:  vpr.GetString("sendgridApiKey"),
		RollbarToken:    vpr.GetString("rollbarToken"),
	}

	from, err := mail.ParseAddress(vpr.GetString("defaultFromEmail"))
	if err != nil {
		log.Fatalf("config.defaultFromEmail: %v", err)
	}
	conf.DefaultFromEmail = *from

	refDate, err := time.Parse(DateLayout, vpr.GetString("referenceDate"))
	if err != nil {
		log.Fatalf("config.referenceDate: %v", err)
	}
	conf.ReferenceDate = refDate

	conf.Server.Address = vpr.GetString("serverAddress")
	conf.Server.Host = vpr.GetString("serverHost")
	conf.Server.DebugHost = vpr.GetString("serverDebugHost")
	conf.Server.ShutdownTimeout = vpr.GetDuration("serverShutdownTimeout")
	conf.Server.SessionExpirationDelta = vpr.GetDuration("serverSessionExpirationDelta")
	return conf
}
