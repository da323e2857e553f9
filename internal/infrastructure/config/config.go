package config

import (
	"chantierplus/pkg"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Toggle is a boolean flag accepting the usual mock-mode spellings
// (1, true, yes, on, mock). Anything else is false.
type Toggle bool

func (t *Toggle) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "1", "true", "yes", "on", "mock":
		*t = true
	default:
		*t = false
	}
	return nil
}

// maxPhotoBytesLimit is the largest photo proof accepted, whatever MAX_PHOTO_BYTES says.
const maxPhotoBytesLimit = 10 << 20

type NotifyMode string

const (
	NotifyAuto   NotifyMode = "auto"
	NotifyManual NotifyMode = "manual"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	AWS        AWSConfig
	Storage    StorageConfig
	Transcribe TranscriptionConfig
	Notify     NotifyConfig

	DraftIdleTTL time.Duration `env:"DRAFT_IDLE_TTL" envDefault:"2h"`
}

type AWSConfig struct {
	Region           string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID      string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`
	S3Endpoint       string `env:"S3_ENDPOINT"`
	SESEndpoint      string `env:"SES_ENDPOINT"`
	AvenantsTable    string `env:"AVENANTS_TABLE" envDefault:"avenants"`
}

type StorageConfig struct {
	PhotosBucket  string `env:"PHOTOS_BUCKET" envDefault:"chantierplus-avenant-photos"`
	Mock          Toggle `env:"PHOTO_STORAGE_MOCK"`
	MaxPhotoBytes int64  `env:"MAX_PHOTO_BYTES" envDefault:"10485760"`
}

type TranscriptionConfig struct {
	APIKey  string `env:"OPENAI_API_KEY"`
	BaseURL string `env:"OPENAI_BASE_URL"`
	Model   string `env:"TRANSCRIPTION_MODEL" envDefault:"whisper-1"`
	Mock    Toggle `env:"TRANSCRIPTION_MOCK"`
}

type NotifyConfig struct {
	Mode       NotifyMode `env:"NOTIFY_MODE" envDefault:"auto"`
	Recipients []string   `env:"NOTIFY_RECIPIENTS" envSeparator:","`
	FromEmail  string     `env:"MAIL_FROM_EMAIL" envDefault:"noreply@chantierplus.app"`
	FromName   string     `env:"MAIL_FROM_NAME" envDefault:"ChantierPlus"`
	Mock       Toggle     `env:"NOTIFY_MOCK"`
}

// TranscriptionMocked reports whether dictation should return the simulated text.
func (c Config) TranscriptionMocked() bool {
	return bool(c.Transcribe.Mock) || strings.TrimSpace(c.Transcribe.APIKey) == ""
}

func (c Config) AutoNotify() bool {
	return c.Notify.Mode == NotifyAuto
}

// Load reads the process environment. .env files are loaded beforehand by
// godotenv/autoload in main.
func Load() (Config, error) {
	return parse(env.Options{})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	c.Notify.Mode = NotifyMode(strings.ToLower(strings.TrimSpace(string(c.Notify.Mode))))
	switch c.Notify.Mode {
	case NotifyAuto, NotifyManual:
	default:
		return fmt.Errorf("invalid NOTIFY_MODE %q (want auto or manual)", c.Notify.Mode)
	}
	if c.Storage.MaxPhotoBytes <= 0 || c.Storage.MaxPhotoBytes > maxPhotoBytesLimit {
		return fmt.Errorf("invalid MAX_PHOTO_BYTES %d (want 1..%d)", c.Storage.MaxPhotoBytes, maxPhotoBytesLimit)
	}
	if c.DraftIdleTTL < 0 {
		return fmt.Errorf("invalid DRAFT_IDLE_TTL %s", c.DraftIdleTTL)
	}
	recipients := c.Notify.Recipients[:0]
	for _, raw := range c.Notify.Recipients {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		r, err := pkg.NormalizeEmail(raw)
		if err != nil {
			return fmt.Errorf("invalid NOTIFY_RECIPIENTS entry %q: %w", raw, err)
		}
		recipients = append(recipients, r)
	}
	c.Notify.Recipients = recipients
	if _, err := pkg.NormalizeEmail(c.Notify.FromEmail); err != nil {
		return fmt.Errorf("invalid MAIL_FROM_EMAIL %q: %w", c.Notify.FromEmail, err)
	}
	return nil
}
