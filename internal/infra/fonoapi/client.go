// Package fonoapi looks up device capabilities through the FonoAPI HTTP endpoint.
package fonoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"booking/config"
	deliverycontext "booking/internal/delivery/context"
	"booking/internal/domain/entity"
	"booking/internal/domain/service"
	"booking/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxResponseBodySize = 1 << 20

var (
	errLookupNotConfigured = errors.New("device lookup is not configured")
	errIncompleteDevice    = errors.New("device lookup response is missing capability fields")
)

// deviceResponse is one device entry. Bands are read from the bandsNg keys,
// falling back to FonoAPI's _Ng_bands keys. Status and Message are only set
// on FonoAPI error bodies, which are served with HTTP 200.
type deviceResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`

	Technology *string `json:"technology"`
	Bands2G    *string `json:"bands2g"`
	Bands3G    *string `json:"bands3g"`
	Bands4G    *string `json:"bands4g"`

	FonoBands2G *string `json:"_2g_bands"`
	FonoBands3G *string `json:"_3g_bands"`
	FonoBands4G *string `json:"_4g_bands"`
}

// toSpecs requires every capability field so a result is never partly filled.
func (d *deviceResponse) toSpecs() (*entity.DeviceSpecs, error) {
	if d.Status == "error" {
		return nil, errors.Errorf("device lookup returned an error: %s", d.Message)
	}

	bands2G := firstSet(d.Bands2G, d.FonoBands2G)
	bands3G := firstSet(d.Bands3G, d.FonoBands3G)
	bands4G := firstSet(d.Bands4G, d.FonoBands4G)
	if d.Technology == nil || bands2G == nil || bands3G == nil || bands4G == nil {
		return nil, errIncompleteDevice
	}

	return &entity.DeviceSpecs{
		Technology: *d.Technology,
		Bands2G:    *bands2G,
		Bands3G:    *bands3G,
		Bands4G:    *bands4G,
	}, nil
}

func firstSet(values ...*string) *string {
	for _, v := range values {
		if v != nil {
			return v
		}
	}

	return nil
}

// client implements DeviceLookupService by POSTing form data to FonoAPI
type client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	metrics    metrics.EnrichmentMetrics
	logger     *slog.Logger
}

// unconfiguredClient fails every lookup so callers fall back to unavailable specs
type unconfiguredClient struct{}

func (unconfiguredClient) Lookup(_ context.Context, _, _ string) (*entity.DeviceSpecs, error) {
	return nil, errLookupNotConfigured
}

// Params holds dependencies for the lookup client, injected by Fx
type Params struct {
	fx.In

	Config  *config.Config
	Metrics metrics.EnrichmentMetrics
	Logger  *slog.Logger
}

// NewDeviceLookupService creates a DeviceLookupService based on configuration
func NewDeviceLookupService(params Params) service.DeviceLookupService {
	cfg := params.Config.FonoAPI
	if cfg == nil || cfg.URL == "" {
		params.Logger.Warn("FonoAPI not configured, device specs will be unavailable")

		return unconfiguredClient{}
	}

	return NewClient(cfg, params.Metrics, params.Logger)
}

// NewClient creates a FonoAPI client for the given endpoint
func NewClient(cfg *config.FonoAPIConfig, m metrics.EnrichmentMetrics, logger *slog.Logger) service.DeviceLookupService {
	return &client{
		endpoint: cfg.URL,
		token:    cfg.Token,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		metrics: m,
		logger:  logger,
	}
}

// Lookup fetches the capabilities of a brand/device pair. Any failure is returned
// to the caller; there is no retry or caching.
func (c *client) Lookup(ctx context.Context, brand, device string) (*entity.DeviceSpecs, error) {
	start := time.Now()

	specs, result, err := c.lookup(ctx, brand, device)
	if c.metrics != nil {
		c.metrics.ObserveLookup(result, time.Since(start))
	}
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, c.logger).Debug("Device lookup succeeded",
		slog.String("brand", brand),
		slog.String("device", device),
		slog.Duration("elapsed", time.Since(start)),
	)

	return specs, nil
}

func (c *client) lookup(ctx context.Context, brand, device string) (*entity.DeviceSpecs, string, error) {
	form := url.Values{}
	form.Set("token", c.token)
	form.Set("brand", brand)
	form.Set("device", device)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, metrics.LookupResultTransport, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, metrics.LookupResultTransport, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, metrics.LookupResultHTTPError, errors.Errorf("device lookup returned non-success status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, metrics.LookupResultTransport, errors.Wrap(err, "failed to read device lookup response")
	}

	found, err := decodeDevice(body)
	if err != nil {
		return nil, metrics.LookupResultDecodeError, err
	}
	if found == nil {
		return nil, metrics.LookupResultNotFound, errors.Errorf("no device found for %s %s", brand, device)
	}

	specs, err := found.toSpecs()
	if err != nil {
		return nil, metrics.LookupResultDecodeError, err
	}

	return specs, metrics.LookupResultSuccess, nil
}

// decodeDevice accepts either a device list, of which the first entry wins, or
// a single device object. A nil device means the list was empty.
func decodeDevice(body []byte) (*deviceResponse, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, errors.New("empty device lookup response")
	}

	if trimmed[0] == '[' {
		var devices []deviceResponse
		if err := json.Unmarshal(trimmed, &devices); err != nil {
			return nil, errors.Wrap(err, "failed to decode device lookup response")
		}
		if len(devices) == 0 {
			return nil, nil
		}

		return &devices[0], nil
	}

	var device deviceResponse
	if err := json.Unmarshal(trimmed, &device); err != nil {
		return nil, errors.Wrap(err, "failed to decode device lookup response")
	}

	return &device, nil
}
