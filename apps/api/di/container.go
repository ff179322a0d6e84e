// Package di builds the dependency graph of the API service.
package di

import (
	"context"
	"log"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/dig"

	echoapi "github.com/Arlahanmanthrao1/school/apps/api/echo"
	"github.com/Arlahanmanthrao1/school/core"
	"github.com/Arlahanmanthrao1/school/core/contact"
	"github.com/Arlahanmanthrao1/school/core/site"
	logsvc "github.com/Arlahanmanthrao1/school/services/logger"
	"github.com/Arlahanmanthrao1/school/services/metrics"
	relaysvc "github.com/Arlahanmanthrao1/school/services/relay"
)

type registryParams struct {
	dig.In

	Conf       *core.Config
	Logger     core.Logger
	Relay      contact.Relay
	Validate   *validator.Validate
	Translator ut.Translator
}

// NewLogger returns the rollbar logger, disabled in debug, printing to stdout with prefix.
func NewLogger(conf *core.Config, prefix string) core.Logger {
	stdLogger := log.New(os.Stdout, prefix, log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newAPILogger(conf *core.Config) core.Logger {
	return NewLogger(conf, "API : ")
}

func newValidator(translator ut.Translator) *validator.Validate {
	validate := validator.New()
	core.InitValidators(validate, translator)
	return validate
}

func newMetrics() (*metrics.ContactMetrics, prometheus.Gatherer) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return metrics.NewContactMetrics(reg), reg
}

// NewRelay returns the configured relay, instrumented with m.
func NewRelay(conf *core.Config, logger core.Logger, m *metrics.ContactMetrics) (contact.Relay, error) {
	relay, err := relaysvc.New(context.Background(), conf, logger)
	if err != nil {
		return nil, err
	}
	return metrics.InstrumentRelay(relay, conf.Relay.Provider, m), nil
}

// NewFormDeps returns what every mounted contact form needs.
func NewFormDeps(conf *core.Config, logger core.Logger, relay contact.Relay, validate *validator.Validate, translator ut.Translator) contact.FormDeps {
	return contact.FormDeps{
		Relay:      relay,
		RelayConf:  contact.NewRelayConfig(conf),
		Validate:   validate,
		Translator: translator,
		Logger:     logger,
	}
}

func newRegistry(p registryParams) *contact.Registry {
	deps := NewFormDeps(p.Conf, p.Logger, p.Relay, p.Validate, p.Translator)
	return contact.NewRegistry(deps, p.Conf.Server.FormIdleTimeout, p.Conf.Server.MaxForms)
}

func newGallery() *site.Gallery {
	return site.NewGallery()
}

// New returns a new dependency injection dig.Container
func New(newConfig func() *core.Config) *dig.Container {
	c := dig.New()

	must(c.Provide(newConfig))
	must(c.Provide(newAPILogger))
	must(c.Provide(core.NewTranslator))
	must(c.Provide(newValidator))
	must(c.Provide(newMetrics))
	must(c.Provide(NewRelay))
	must(c.Provide(newRegistry))
	must(c.Provide(newGallery))
	must(c.Provide(echoapi.NewServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
