package httpproxy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/AiondaDotCom/WebUI-sub002/store"
)

const (
	logMsgRequestFailed   = "http request failed"
	logMsgBadStatus       = "endpoint answered with unexpected status"
	logMsgDecodeFailed    = "failed to decode response body"
	logMsgCloseBodyFailed = "failed to close response body"
	logMsgReadCompleted   = "read completed"
	logAttrError          = "error"
	logAttrURL            = "url"
	logAttrStatus         = "status"
	logAttrRecordCount    = "record_count"
	logAttrDurationMS     = "duration_ms"
	headerAccept          = "Accept"
	contentTypeJSON       = "application/json"
)

// Logger interface for request logging, operational metrics, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Proxy reads records from a JSON HTTP endpoint.
// The zero value is not usable; construct with New.
type Proxy struct {
	endpoint *url.URL
	client   *http.Client
	headers  http.Header
	logger   Logger
}

// Option defines a functional option for configuring a Proxy.
type Option func(*Proxy) error

// WithClient sets the HTTP client used for requests.
// Without it the Proxy uses http.DefaultClient.
func WithClient(client *http.Client) Option {
	return func(p *Proxy) error {
		if client == nil {
			return ErrNilHTTPClient
		}

		p.client = client

		return nil
	}
}

// WithHeader adds a header to every request, for example an Authorization header.
func WithHeader(key, value string) Option {
	return func(p *Proxy) error {
		p.headers.Add(key, value)
		return nil
	}
}

// WithLogger sets the logger for the Proxy.
func WithLogger(logger Logger) Option {
	return func(p *Proxy) error {
		p.logger = logger
		return nil
	}
}

// New creates a Proxy for the given endpoint URL with optional configuration.
func New(endpoint string, options ...Option) (Proxy, error) {
	if endpoint == "" {
		return Proxy{}, ErrEmptyURL
	}

	parsed, parseErr := url.Parse(endpoint)
	if parseErr != nil {
		return Proxy{}, errors.Join(ErrInvalidURL, parseErr)
	}

	p := Proxy{
		endpoint: parsed,
		client:   http.DefaultClient,
		headers:  make(http.Header),
	}

	for _, option := range options {
		if err := option(&p); err != nil {
			return Proxy{}, err
		}
	}

	return p, nil
}

// Read issues a GET request against the endpoint and decodes the JSON array
// response into records. Params become query string parameters on top of any
// the endpoint URL already carries. Read implements store.Proxy.
func (p Proxy) Read(ctx context.Context, params map[string]any) ([]store.Record, error) {
	requestURL := p.requestURL(params)

	request, requestErr := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if requestErr != nil {
		return nil, errors.Join(ErrRequestFailed, requestErr)
	}

	for key, values := range p.headers {
		for _, value := range values {
			request.Header.Add(key, value)
		}
	}
	request.Header.Set(headerAccept, contentTypeJSON)

	start := time.Now()
	response, doErr := p.client.Do(request)
	duration := time.Since(start)

	if doErr != nil {
		if p.logger != nil {
			p.logger.Error(logMsgRequestFailed, logAttrError, doErr.Error(), logAttrURL, requestURL)
		}

		return nil, errors.Join(ErrRequestFailed, doErr)
	}
	defer p.closeBody(response.Body)

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		if p.logger != nil {
			p.logger.Error(logMsgBadStatus, logAttrStatus, response.StatusCode, logAttrURL, requestURL)
		}

		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, response.StatusCode)
	}

	body, readErr := io.ReadAll(response.Body)
	if readErr != nil {
		return nil, errors.Join(ErrRequestFailed, readErr)
	}

	records, decodeErr := store.RecordsFromJSON(body)
	if decodeErr != nil {
		if p.logger != nil {
			p.logger.Error(logMsgDecodeFailed, logAttrError, decodeErr.Error(), logAttrURL, requestURL)
		}

		return nil, errors.Join(ErrDecodingResponseFailed, decodeErr)
	}

	if p.logger != nil {
		p.logger.Info(
			logMsgReadCompleted,
			logAttrRecordCount, len(records),
			logAttrDurationMS, p.durationToMilliseconds(duration))
	}

	return records, nil
}

// requestURL merges params into the endpoint's query string.
func (p Proxy) requestURL(params map[string]any) string {
	requestURL := *p.endpoint

	query := requestURL.Query()
	for key, value := range params {
		query.Set(key, fmt.Sprintf("%v", value))
	}
	requestURL.RawQuery = query.Encode()

	return requestURL.String()
}

// closeBody safely closes the response body and logs any errors.
func (p Proxy) closeBody(body io.ReadCloser) {
	if closeErr := body.Close(); closeErr != nil {
		if p.logger != nil {
			p.logger.Warn(logMsgCloseBodyFailed, logAttrError, closeErr.Error())
		}
	}
}

// durationToMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func (p Proxy) durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
