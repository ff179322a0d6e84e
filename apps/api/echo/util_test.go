package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Arlahanmanthrao1/school/core"
	"github.com/Arlahanmanthrao1/school/core/contact"
	"github.com/Arlahanmanthrao1/school/core/site"
	"github.com/Arlahanmanthrao1/school/services/metrics"
)

type testApp struct {
	server   *Server
	registry *contact.Registry
	relay    *contact.RelayMock
}

func setup(t *testing.T, configure ...func(conf *core.Config)) testApp {
	t.Helper()

	conf := core.NewTestConfig()
	conf.Server.DisableReqLogs = true
	conf.Server.RateLimit = 0
	conf.Server.MountRateLimit = 0
	for _, fn := range configure {
		fn(conf)
	}

	relay := contact.NewRelayMock()
	registry := contact.NewRegistry(contact.NewTestDeps(relay), time.Hour, conf.Server.MaxForms)
	reg := prometheus.NewRegistry()

	server := NewServer(ServerDeps{
		Conf:     conf,
		Logger:   nopLogger{},
		Registry: registry,
		Metrics:  metrics.NewContactMetrics(reg),
		Gallery:  site.NewGallery(),
		Gatherer: reg,
	})
	return testApp{server: server, registry: registry, relay: relay}
}

func (app testApp) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.server.ServeHTTP(rec, req)
	return rec
}

type httpErr struct {
	Error string `json:"error"`
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func newRequest(method, path string, data ...[]byte) *http.Request {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func newFormRequest(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func marshalObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshalObj() failed: %v", err)
	}
	return data
}

func unmarshal(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("unmarshal(%s) failed: %v", rec.Body.String(), err)
	}
}
