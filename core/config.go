package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// relay providers
const (
	RelayEmailJS  = "emailjs"
	RelaySendgrid = "sendgrid"
	RelaySES      = "ses"
	RelayConsole  = "console"
)

type (
	Config struct {
		AppName      string
		SiteURL      string
		Env          string
		Build        string
		Debug        bool
		TestMode     bool
		WorkDir      string
		RollbarToken string

		DefaultFromEmailAddress string
		SendgridApiKey          string
		AWSRegion               string

		Server ServerConfig
		Relay  RelayConfig
		School SchoolConfig
		Popup  PopupConfig
	}

	ServerConfig struct {
		Address         string
		Host            string
		DebugHost       string
		ShutdownTimeout time.Duration
		DisableReqLogs  bool
		RateLimit       float64 // submissions per second per client IP
		MountRateLimit  float64 // form mounts per second per client IP
		FormIdleTimeout time.Duration
		MaxForms        int // mounted forms kept at once, oldest idle evicted past it
	}

	RelayConfig struct {
		Provider   string
		Endpoint   string
		ServiceID  string
		TemplateID string
		PublicKey  string
		PrivateKey string
		Recipient  string // school inbox for the sendgrid, ses & console relays
		Timeout    time.Duration
	}

	SchoolConfig struct {
		Name           string
		Tagline        string
		Address        string
		Phone          string
		Email          string
		OfficeHours    string
		WhatsAppNumber string
		AcademicYear   string
		Founded        int
	}

	PopupConfig struct {
		Enabled bool
		Delay   time.Duration
	}
)

// NewConfig loads the configuration from the environment.
//
// ENV selects the environment: DEV (local; default), TEST, QA, PROD.
// Variables are prefixed with it (eg: PROD_RELAY_SERVICEID).
func NewConfig() *Config {
	v := viper.New()
	setDefaults(v)

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	workDir := os.Getenv("WORKDIR")
	if workDir == "" {
		workDir = Getwd()
	}

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(workDir, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}

	// optional config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(workDir, "config"))
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("config.ReadInConfig: %v", err)
		}
	}
	v.AutomaticEnv()

	conf := fromViper(v)
	conf.Env = env
	conf.WorkDir = workDir
	return conf
}

func setDefaults(v *viper.Viper) {
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("appName", "Global Techno School")
	v.SetDefault("siteURL", "https://globaltechnoschool.edu")
	v.SetDefault("build", "develop")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("defaultFromEmail", "Global Techno School <noreply@globaltechnoschool.edu>")
	v.SetDefault("sendgridApiKey", "")
	v.SetDefault("awsRegion", "ap-south-1")

	v.SetDefault("server.address", ":8000")
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.debugHost", "localhost:4000")
	v.SetDefault("server.shutdownTimeout", 10*time.Second)
	v.SetDefault("server.disableReqLogs", false)
	v.SetDefault("server.rateLimit", 1.0)
	v.SetDefault("server.mountRateLimit", 5.0)
	v.SetDefault("server.formIdleTimeout", 2*time.Hour)
	v.SetDefault("server.maxForms", 10000)

	v.SetDefault("relay.provider", "")
	v.SetDefault("relay.endpoint", "https://api.emailjs.com/api/v1.0/email/send")
	v.SetDefault("relay.serviceId", "")
	v.SetDefault("relay.templateId", "contact")
	v.SetDefault("relay.publicKey", "")
	v.SetDefault("relay.privateKey", "")
	v.SetDefault("relay.recipient", "info@globaltechnoschool.edu")
	v.SetDefault("relay.timeout", 30*time.Second)

	v.SetDefault("school.name", "Global Techno School")
	v.SetDefault("school.tagline", "Nurturing Excellence, Inspiring Futures")
	v.SetDefault("school.address", "12-2-834/A, Asif Nagar Rd, Sri Ram Nagar Colony, MIGH Colony, Murad Nagar, Hyderabad, Telangana 500006")
	v.SetDefault("school.phone", "+91 94936 82828")
	v.SetDefault("school.email", "info@globaltechnoschool.edu")
	v.SetDefault("school.officeHours", "Mon-Fri: 8:00 AM - 4:00 PM")
	v.SetDefault("school.whatsAppNumber", "")
	v.SetDefault("school.academicYear", "2026–27")
	v.SetDefault("school.founded", 1985)

	v.SetDefault("popup.enabled", true)
	v.SetDefault("popup.delay", 1500*time.Millisecond)
}

func fromViper(v *viper.Viper) *Config {
	conf := &Config{
		AppName:                 v.GetString("appName"),
		SiteURL:                 v.GetString("siteURL"),
		Build:                   v.GetString("build"),
		Debug:                   v.GetBool("debug"),
		TestMode:                v.GetBool("testMode"),
		RollbarToken:            v.GetString("rollbarToken"),
		DefaultFromEmailAddress: v.GetString("defaultFromEmail"),
		SendgridApiKey:          v.GetString("sendgridApiKey"),
		AWSRegion:               v.GetString("awsRegion"),
		Server: ServerConfig{
			Address:         v.GetString("server.address"),
			Host:            v.GetString("server.host"),
			DebugHost:       v.GetString("server.debugHost"),
			ShutdownTimeout: v.GetDuration("server.shutdownTimeout"),
			DisableReqLogs:  v.GetBool("server.disableReqLogs"),
			RateLimit:       v.GetFloat64("server.rateLimit"),
			MountRateLimit:  v.GetFloat64("server.mountRateLimit"),
			FormIdleTimeout: v.GetDuration("server.formIdleTimeout"),
			MaxForms:        v.GetInt("server.maxForms"),
		},
		Relay: RelayConfig{
			Provider:   strings.ToLower(v.GetString("relay.provider")),
			Endpoint:   v.GetString("relay.endpoint"),
			ServiceID:  v.GetString("relay.serviceId"),
			TemplateID: v.GetString("relay.templateId"),
			PublicKey:  v.GetString("relay.publicKey"),
			PrivateKey: v.GetString("relay.privateKey"),
			Recipient:  v.GetString("relay.recipient"),
			Timeout:    v.GetDuration("relay.timeout"),
		},
		School: SchoolConfig{
			Name:           v.GetString("school.name"),
			Tagline:        v.GetString("school.tagline"),
			Address:        v.GetString("school.address"),
			Phone:          v.GetString("school.phone"),
			Email:          v.GetString("school.email"),
			OfficeHours:    v.GetString("school.officeHours"),
			WhatsAppNumber: v.GetString("school.whatsAppNumber"),
			AcademicYear:   v.GetString("school.academicYear"),
			Founded:        v.GetInt("school.founded"),
		},
		Popup: PopupConfig{
			Enabled: v.GetBool("popup.enabled"),
			Delay:   v.GetDuration("popup.delay"),
		},
	}

	if conf.Relay.Provider == "" {
		if conf.Debug || conf.TestMode {
			conf.Relay.Provider = RelayConsole
		} else {
			conf.Relay.Provider = RelayEmailJS
		}
	}
	return conf
}

// NewTestConfig returns the defaults of the TEST environment, without reading the environment.
func NewTestConfig() *Config {
	v := viper.New()
	setDefaults(v)
	v.Set("testMode", true)
	conf := fromViper(v)
	conf.Env = "TEST"
	return conf
}

// DefaultFromEmail parses DefaultFromEmailAddress, falling back to the bare address on parse errors.
func (c *Config) DefaultFromEmail() mail.Address {
	addr, err := mail.ParseAddress(c.DefaultFromEmailAddress)
	if err != nil {
		return mail.Address{Address: c.DefaultFromEmailAddress}
	}
	return *addr
}

// Validate reports the relay settings missing for the selected provider.
func (c *Config) Validate() error {
	var flds []FieldError
	missing := func(key string) {
		flds = append(flds, FieldError{Field: key, Error: "this field is required"})
	}

	switch c.Relay.Provider {
	case RelayEmailJS:
		if c.Relay.Endpoint == "" {
			missing("relay.endpoint")
		}
		if c.Relay.ServiceID == "" {
			missing("relay.serviceId")
		}
		if c.Relay.TemplateID == "" {
			missing("relay.templateId")
		}
		if c.Relay.PublicKey == "" {
			missing("relay.publicKey")
		}
	case RelaySendgrid:
		if c.SendgridApiKey == "" {
			missing("sendgridApiKey")
		}
		if c.Relay.Recipient == "" {
			missing("relay.recipient")
		}
	case RelaySES:
		if c.AWSRegion == "" {
			missing("awsRegion")
		}
		if c.Relay.Recipient == "" {
			missing("relay.recipient")
		}
	case RelayConsole:
		if c.Relay.Recipient == "" {
			missing("relay.recipient")
		}
	default:
		return NewValidationError(
			errors.Errorf("unknown relay provider %q", c.Relay.Provider),
			FieldError{Field: "relay.provider", Error: "unknown relay provider"},
		)
	}

	if len(flds) > 0 {
		return NewValidationError(errors.Errorf("relay %q is not configured", c.Relay.Provider), flds...)
	}
	return nil
}
