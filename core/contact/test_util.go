package contact

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Arlahanmanthrao1/school/core"
)

// RelayMock records the requests it receives and fails with Err when set.
type RelayMock struct {
	mu       sync.Mutex
	requests []RelayRequest
	err      error
	gate     chan struct{}
	started  chan struct{}
}

var _ Relay = (*RelayMock)(nil)

func NewRelayMock() *RelayMock {
	return &RelayMock{}
}

func (m *RelayMock) Send(_ context.Context, req RelayRequest) error {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	gate, started, err := m.gate, m.started, m.err
	m.mu.Unlock()

	if gate != nil {
		started <- struct{}{}
		<-gate
	}
	return err
}

// FailWith makes the following sends fail with err (nil to succeed again).
func (m *RelayMock) FailWith(err error) {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
}

// Hold makes the following sends block until release is called.
// started receives once per blocked send.
func (m *RelayMock) Hold() (started <-chan struct{}, release func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gate = make(chan struct{})
	m.started = make(chan struct{}, 16)
	gate := m.gate
	var once sync.Once
	return m.started, func() {
		once.Do(func() {
			m.mu.Lock()
			m.gate = nil
			m.mu.Unlock()
			close(gate)
		})
	}
}

func (m *RelayMock) Requests() []RelayRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]RelayRequest(nil), m.requests...)
}

func (m *RelayMock) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// NewTestDeps returns FormDeps wired to relay with a ready validator & a silent logger.
func NewTestDeps(relay Relay) FormDeps {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	return FormDeps{
		Relay:      relay,
		RelayConf:  RelayConfig{ServiceID: "service_test", TemplateID: "contact", PublicKey: "public_test"},
		Validate:   validate,
		Translator: translator,
		Logger:     nopLogger{},
	}
}

type nopLogger struct{}

var _ core.Logger = nopLogger{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}
