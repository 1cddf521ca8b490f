package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"call-intake-api"`

	// Google Sheets sink.
	GoogleCredentialsJSON string `env:"GOOGLE_CREDENTIALS_JSON,required,notEmpty"`
	SpreadsheetID         string `env:"SPREADSHEET_ID,required,notEmpty"`
	SheetRange            string `env:"SHEET_RANGE" envDefault:"Leads!A:H"`

	// Twilio SMS sink.
	TwilioAccountSID   string `env:"TWILIO_ACCOUNT_SID,required,notEmpty"`
	TwilioAuthToken    string `env:"TWILIO_AUTH_TOKEN,required,notEmpty"`
	TwilioFromNumber   string `env:"TWILIO_FROM_NUMBER,required,notEmpty"`
	TwilioNotifyNumber string `env:"TWILIO_NOTIFY_NUMBER,required,notEmpty"`

	// DedupeTTL is how long a call ID is remembered to suppress
	// redelivered webhooks for the same call.
	DedupeTTL time.Duration `env:"DEDUPE_TTL" envDefault:"10m"`
	// DispatchTimeout bounds the two downstream calls for one request.
	DispatchTimeout time.Duration `env:"DISPATCH_TIMEOUT" envDefault:"30s"`
}

// LoadSettings reads settings from the environment, overlaying envFile first
// if it exists. Missing required values fail the load.
func LoadSettings(envFile string) (Settings, error) {
	if envFile != "" {
		// The env file is optional; platform-provided variables win.
		_ = godotenv.Load(envFile)
	}
	var settings Settings
	if err := env.Parse(&settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings from environment: %w", err)
	}
	return settings, nil
}
