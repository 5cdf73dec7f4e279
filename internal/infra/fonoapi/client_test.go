package fonoapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"booking/config"
	deliverycontext "booking/internal/delivery/context"
	"booking/internal/domain/entity"
	"booking/internal/infra/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMetrics struct {
	mu      sync.Mutex
	results []string
}

func (m *recordingMetrics) ObserveLookup(result string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, result)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*recordingMetrics, func(ctx context.Context, brand, device string) error) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	rec := &recordingMetrics{}
	c := NewClient(&config.FonoAPIConfig{
		URL:     srv.URL,
		Token:   "secret",
		Timeout: time.Second,
	}, rec, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return rec, func(ctx context.Context, brand, device string) error {
		_, err := c.Lookup(ctx, brand, device)
		return err
	}
}

func TestClient_Lookup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "req-1", r.Header.Get(deliverycontext.HeaderXRequestID))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "secret", r.PostForm.Get("token"))
		assert.Equal(t, "Samsung", r.PostForm.Get("brand"))
		assert.Equal(t, "Galaxy S9", r.PostForm.Get("device"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"DeviceName":"Samsung Galaxy S9","technology":"GSM / HSPA / LTE","_2g_bands":"GSM 850 / 900","_3g_bands":"HSDPA 850 / 900","_4g_bands":"LTE band 1(2100)"}]`))
	}))
	defer srv.Close()

	rec := &recordingMetrics{}
	c := NewClient(&config.FonoAPIConfig{URL: srv.URL, Token: "secret", Timeout: time.Second}, rec,
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	specs, err := c.Lookup(ctx, "Samsung", "Galaxy S9")

	require.NoError(t, err)
	assert.Equal(t, "GSM / HSPA / LTE", specs.Technology)
	assert.Equal(t, "GSM 850 / 900", specs.Bands2G)
	assert.Equal(t, "HSDPA 850 / 900", specs.Bands3G)
	assert.Equal(t, "LTE band 1(2100)", specs.Bands4G)
	assert.Equal(t, []string{metrics.LookupResultSuccess}, rec.results)
}

func TestClient_Lookup_SingleObject(t *testing.T) {
	rec, lookup := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"technology":"LTE","_2g_bands":"a","_3g_bands":"b","_4g_bands":"c"}`))
	})

	require.NoError(t, lookup(context.Background(), "Acme", "X1"))
	assert.Equal(t, []string{metrics.LookupResultSuccess}, rec.results)
}

func TestClient_Lookup_SpecPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"technology":"LTE","bands2g":"a","bands3g":"b","bands4g":"c"}`))
	}))
	defer srv.Close()

	rec := &recordingMetrics{}
	c := NewClient(&config.FonoAPIConfig{URL: srv.URL, Timeout: time.Second}, rec,
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	specs, err := c.Lookup(context.Background(), "Acme", "X1")

	require.NoError(t, err)
	assert.Equal(t, &entity.DeviceSpecs{Technology: "LTE", Bands2G: "a", Bands3G: "b", Bands4G: "c"}, specs)
	assert.Equal(t, []string{metrics.LookupResultSuccess}, rec.results)
}

func TestClient_Lookup_Failures(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantResult string
	}{
		{
			name: "non-success status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantResult: metrics.LookupResultHTTPError,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{not json`))
			},
			wantResult: metrics.LookupResultDecodeError,
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			wantResult: metrics.LookupResultDecodeError,
		},
		{
			name: "null body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`null`))
			},
			wantResult: metrics.LookupResultDecodeError,
		},
		{
			name: "empty object",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{}`))
			},
			wantResult: metrics.LookupResultDecodeError,
		},
		{
			name: "error object with success status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"status":"error","message":"Invalid token"}`))
			},
			wantResult: metrics.LookupResultDecodeError,
		},
		{
			name: "partial capabilities",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`[{"technology":"LTE","bands2g":"a"}]`))
			},
			wantResult: metrics.LookupResultDecodeError,
		},
		{
			name: "no matching device",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`[]`))
			},
			wantResult: metrics.LookupResultNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, lookup := newTestClient(t, tt.handler)

			err := lookup(context.Background(), "Acme", "X1")

			assert.Error(t, err)
			assert.Equal(t, []string{tt.wantResult}, rec.results)
		})
	}
}

func TestClient_Lookup_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	rec := &recordingMetrics{}
	c := NewClient(&config.FonoAPIConfig{URL: srv.URL, Timeout: 50 * time.Millisecond}, rec,
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := c.Lookup(context.Background(), "Acme", "X1")

	assert.Error(t, err)
	assert.Equal(t, []string{metrics.LookupResultTransport}, rec.results)
}

func TestNewDeviceLookupService_Unconfigured(t *testing.T) {
	svc := NewDeviceLookupService(Params{
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	specs, err := svc.Lookup(context.Background(), "Acme", "X1")

	assert.Nil(t, specs)
	assert.ErrorIs(t, err, errLookupNotConfigured)
}
