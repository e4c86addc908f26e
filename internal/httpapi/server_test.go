package httpapi

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/woordkaart/grieks/internal/config"
	"github.com/woordkaart/grieks/internal/logging"
	"github.com/woordkaart/grieks/internal/metrics"
	"github.com/woordkaart/grieks/internal/view"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testSettings() config.ServerSettings {
	return config.ServerSettings{
		Addr:            "127.0.0.1:0",
		AllowedOrigins:  []string{"*"},
		CacheTTL:        time.Minute,
		ShutdownTimeout: time.Second,
	}
}

func newTestServer(t *testing.T, settings config.ServerSettings) (*Server, *metrics.Metrics) {
	t.Helper()
	m, err := metrics.New(prometheus.NewRegistry())
	require.NoError(t, err)
	s, err := NewServer(settings, logging.Discard(), m)
	require.NoError(t, err)
	return s, m
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestNewServerRequiresDependencies(t *testing.T) {
	m, err := metrics.New(prometheus.NewRegistry())
	require.NoError(t, err)

	_, err = NewServer(testSettings(), nil, m)
	assert.Error(t, err)
	_, err = NewServer(testSettings(), logging.Discard(), nil)
	assert.Error(t, err)
}

func TestConjugateGet(t *testing.T) {
	s, _ := newTestServer(t, testSettings())
	q := url.Values{"text": {"γράφω\nγράψω\nέγραψα\nέγραφα"}}
	rec := do(t, s.Handler(), http.MethodGet, "/api/conjugate?"+q.Encode(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var doc view.Verb
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, []string{"γράφω", "γράψω", "έγραψα", "έγραφα"}, doc.Headwords)
	require.Len(t, doc.Conjugations, 4)
	assert.Equal(t, "enestotas", doc.Conjugations[0].Tense)
	assert.Equal(t, "A1", doc.Conjugations[0].Paradigm)
	assert.Equal(t, "γράφω, γράφεις, γράφει, γράφουμε, γράφετε, γράφουν", doc.Conjugations[0].Table)
	assert.Equal(t, "θα γράψω", doc.Conjugations[1].Forms[0])
	assert.Empty(t, doc.Conjugations[2].Diagnostic)
}

func TestConjugateSingleTense(t *testing.T) {
	s, _ := newTestServer(t, testSettings())
	q := url.Values{"text": {"γράφω\nγράψω"}, "tense": {"future"}}
	rec := do(t, s.Handler(), http.MethodGet, "/api/conjugate?"+q.Encode(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var doc view.Verb
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	require.Len(t, doc.Conjugations, 1)
	assert.Equal(t, "mellontas", doc.Conjugations[0].Tense)
	assert.Equal(t, "regular", doc.Conjugations[0].Paradigm)
}

func TestConjugatePost(t *testing.T) {
	s, _ := newTestServer(t, testSettings())
	rec := do(t, s.Handler(), http.MethodPost, "/api/conjugate",
		`{"text":"γράφω\nγράψω","tense":"aorist"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var doc view.Verb
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	require.Len(t, doc.Conjugations, 1)
	assert.Equal(t, "aorist missing on line 3", doc.Conjugations[0].Diagnostic)
	assert.Empty(t, doc.Conjugations[0].Forms)
}

func TestConjugateErrors(t *testing.T) {
	s, _ := newTestServer(t, testSettings())
	h := s.Handler()

	tests := []struct {
		name   string
		method string
		target string
		body   string
		want   int
	}{
		{"missing text", http.MethodGet, "/api/conjugate", "", http.StatusBadRequest},
		{"blank text", http.MethodGet, "/api/conjugate?text=%20", "", http.StatusBadRequest},
		{"bad tense", http.MethodGet, "/api/conjugate?text=x&tense=pluperfect", "", http.StatusBadRequest},
		{"bad body", http.MethodPost, "/api/conjugate", "{", http.StatusBadRequest},
		{"wrong method", http.MethodDelete, "/api/conjugate", "", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.want, rec.Code)
			var e errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
			assert.NotEmpty(t, e.Error)
		})
	}
}

func TestConjugateHeadwordSlots(t *testing.T) {
	s, _ := newTestServer(t, testSettings())
	q := url.Values{"text": {"γράφω\n\nέγραψα"}}
	rec := do(t, s.Handler(), http.MethodGet, "/api/conjugate?"+q.Encode(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var doc view.Verb
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, []string{"γράφω", "", "έγραψα", ""}, doc.Headwords)
}

func TestConjugateBodyTooLarge(t *testing.T) {
	s, _ := newTestServer(t, testSettings())
	body := `{"text":"` + strings.Repeat("α", maxBodyBytes) + `"}`
	rec := do(t, s.Handler(), http.MethodPost, "/api/conjugate", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConjugateCache(t *testing.T) {
	s, m := newTestServer(t, testSettings())
	h := s.Handler()
	target := "/api/conjugate?" + url.Values{"text": {"γράφω"}}.Encode()

	first := do(t, h, http.MethodGet, target, "")
	second := do(t, h, http.MethodGet, target, "")
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheHitsTotal.WithLabelValues("conjugate")))
	// cached responses are counted too
	assert.Equal(t, 2.0, testutil.ToFloat64(m.GenerationsTotal.WithLabelValues("enestotas", metrics.OutcomeOK)))
}

func TestCachedDiagnosticsAreCounted(t *testing.T) {
	s, m := newTestServer(t, testSettings())
	h := s.Handler()
	target := "/api/imperative?" + url.Values{"text": {"γράφω"}}.Encode()

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, do(t, h, http.MethodGet, target, "").Code)
	}
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheHitsTotal.WithLabelValues("imperative")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.GenerationsTotal.WithLabelValues("prostaktiki", metrics.OutcomeDiagnostic)))
}

func TestConjugateWithoutCache(t *testing.T) {
	settings := testSettings()
	settings.CacheTTL = 0
	s, m := newTestServer(t, settings)
	h := s.Handler()
	target := "/api/conjugate?" + url.Values{"text": {"γράφω"}}.Encode()

	do(t, h, http.MethodGet, target, "")
	do(t, h, http.MethodGet, target, "")
	assert.Equal(t, 2.0, testutil.ToFloat64(m.GenerationsTotal.WithLabelValues("enestotas", metrics.OutcomeOK)))
}

func TestImperative(t *testing.T) {
	s, _ := newTestServer(t, testSettings())
	h := s.Handler()

	rec := do(t, h, http.MethodGet, "/api/imperative?"+url.Values{"text": {"γράφω\nγράψω\nέγραψα"}}.Encode(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	var im view.Imperative
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &im))
	assert.Equal(t, "γράψε", im.Singular)
	assert.Equal(t, "γράψτε", im.Plural)
	assert.Equal(t, "γράψε - γράψτε", im.Text)

	rec = do(t, h, http.MethodGet, "/api/imperative", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = do(t, h, http.MethodPost, "/api/imperative", `{}`)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSpeech(t *testing.T) {
	s, _ := newTestServer(t, testSettings())
	h := s.Handler()

	rec := do(t, h, http.MethodPost, "/api/speech", `{"text":"όνομα, το","word_type":"zelfstandig nw"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp speechResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "το, όνομα", resp.Speech)

	rec = do(t, h, http.MethodPost, "/api/speech", `{"text":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = do(t, h, http.MethodGet, "/api/speech", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestNormalize(t *testing.T) {
	s, _ := newTestServer(t, testSettings())
	h := s.Handler()

	rec := do(t, h, http.MethodGet, "/api/normalize?"+url.Values{"s": {"γράφεις"}}.Encode(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp normalizeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "γραφεισ", resp.Normalized)

	rec = do(t, h, http.MethodGet, "/api/normalize", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestID(t *testing.T) {
	s, _ := newTestServer(t, testSettings())
	h := s.Handler()

	rec := do(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))

	const id = "6f1c3a52-27b4-4d8e-9a0e-3c1b2f5e7d90"
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, id)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, id, rec.Header().Get(requestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(requestIDHeader))
}

func TestRateLimit(t *testing.T) {
	settings := testSettings()
	settings.RateLimit = 0.001
	settings.Burst = 2
	s, m := newTestServer(t, settings)
	h := s.Handler()

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, h, http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateLimitedTotal))
}

func TestRequestMetrics(t *testing.T) {
	s, m := newTestServer(t, testSettings())
	h := s.Handler()

	do(t, h, http.MethodGet, "/healthz", "")
	do(t, h, http.MethodGet, "/api/normalize", "")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("healthz", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("normalize", "400")))

	rec := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "grieks_http_requests_total")
}

func TestCORS(t *testing.T) {
	settings := testSettings()
	settings.AllowedOrigins = []string{"https://example.org"}
	s, _ := newTestServer(t, settings)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://example.org")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "https://example.org", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServeShutsDown(t *testing.T) {
	s, _ := newTestServer(t, testSettings())
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	client.CloseIdleConnections()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
