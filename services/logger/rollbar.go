package logsvc

import (
	"context"
	"log"
	"strings"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"

	"github.com/Arlahanmanthrao1/school/core"
)

// RollbarLogger sends each entry to Rollbar and mirrors it on a std logger.
//
// Args may carry an error, a map[string]interface{} of extras and a core.Person.
// The person is attached to the Rollbar item through its context and never printed.
type RollbarLogger struct {
	std    *log.Logger
	report func(level string, args ...interface{})
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(std *log.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Server.Host)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(errors.StackTracer)
	return &RollbarLogger{std: std, report: rollbar.Log}
}

func (l *RollbarLogger) Enable(enabled bool) {
	rollbar.SetEnabled(enabled)
}

func (l *RollbarLogger) Debug(msg string, args ...interface{}) { l.log(rollbar.DEBUG, msg, args) }
func (l *RollbarLogger) Info(msg string, args ...interface{})  { l.log(rollbar.INFO, msg, args) }
func (l *RollbarLogger) Warn(msg string, args ...interface{})  { l.log(rollbar.WARN, msg, args) }
func (l *RollbarLogger) Error(msg string, args ...interface{}) { l.log(rollbar.ERR, msg, args) }

// Fatal flushes the pending Rollbar items before exiting.
func (l *RollbarLogger) Fatal(msg string, args ...interface{}) {
	l.log(rollbar.CRIT, msg, args)
	rollbar.Wait()
	l.std.Fatal(msg)
}

func (l *RollbarLogger) log(level, msg string, args []interface{}) {
	ctx, rest := personContext(args)
	l.report(level, append([]interface{}{ctx, msg}, rest...)...)

	l.std.Printf("[%s] %s", strings.ToUpper(level), msg)
	for _, arg := range rest {
		l.std.Printf("%+v", arg)
	}
}

// personContext takes the first core.Person out of args.
func personContext(args []interface{}) (context.Context, []interface{}) {
	ctx := context.Background()
	rest := make([]interface{}, 0, len(args))
	var found bool
	for _, arg := range args {
		p, ok := arg.(core.Person)
		if !ok {
			rest = append(rest, arg)
			continue
		}
		if !found {
			id, username, email := p.Person()
			ctx = rollbar.NewPersonContext(ctx, &rollbar.Person{Id: id, Username: username, Email: email})
			found = true
		}
	}
	return ctx, rest
}
