// Package client builds and sends requests to the API under test.
//
// A RequestTemplate holds the configuration that is shared by every request in a test run: the
// base URL of the service, the default headers, and the HTTP client. It is built once, is never
// modified afterward, and is passed by reference to each test, which specializes it with a
// method, a path and an optional body by calling Execute.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fakestore-qa/store-contract-tests/framework"
)

// DefaultTimeout bounds each request when Config.Timeout is not set.
const DefaultTimeout = time.Second * 30

const jsonContentType = "application/json"

// Config contains the options for NewRequest.
type Config struct {
	// BaseURL is the root of the service, such as "https://fakestoreapi.com".
	BaseURL string

	// Timeout bounds the whole exchange for one request, including reading the body.
	Timeout time.Duration

	// AcceptBrotli adds "Accept-Encoding: br" to every request. Brotli-encoded responses are
	// decoded regardless of this setting.
	AcceptBrotli bool

	// Headers are added to every request. They cannot replace Content-Type or Accept.
	Headers map[string]string

	// Transport overrides http.DefaultTransport, for tests.
	Transport http.RoundTripper
}

// RequestTemplate is the shared, read-only base configuration for building API calls.
type RequestTemplate struct {
	baseURL    *url.URL
	headers    http.Header
	httpClient *http.Client
	timeout    time.Duration
	logger     framework.Logger
}

// NewRequest creates a RequestTemplate. It does no network I/O, and fails only if the
// configuration itself is unusable.
func NewRequest(config Config) (*RequestTemplate, error) {
	if config.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}
	u, err := url.Parse(strings.TrimSuffix(config.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", config.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: must be an absolute http or https URL", config.BaseURL)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return nil, fmt.Errorf("invalid base URL %q: must not have a query or fragment", config.BaseURL)
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	headers := make(http.Header)
	for k, v := range config.Headers {
		headers.Set(k, v)
	}
	headers.Set("Content-Type", jsonContentType)
	headers.Set("Accept", jsonContentType)
	if config.AcceptBrotli {
		headers.Set("Accept-Encoding", "br")
	}

	transport := config.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &RequestTemplate{
		baseURL: u,
		headers: headers,
		httpClient: &http.Client{
			Transport: &decodingTransport{base: transport},
			Timeout:   timeout,
		},
		timeout: timeout,
		logger:  framework.NullLogger(),
	}, nil
}

// BaseURL returns the root URL of the service, without a trailing slash.
func (r *RequestTemplate) BaseURL() string {
	return r.baseURL.String()
}

// Headers returns a copy of the headers that are sent with every request.
func (r *RequestTemplate) Headers() http.Header {
	return r.headers.Clone()
}

func (r *RequestTemplate) Timeout() time.Duration {
	return r.timeout
}

// WithLogger returns a copy of the template that writes a description of every request and
// response to the specified logger. The original template is unchanged.
func (r *RequestTemplate) WithLogger(logger framework.Logger) *RequestTemplate {
	if logger == nil {
		logger = framework.NullLogger()
	}
	r1 := *r
	r1.logger = logger
	return &r1
}

// Execute sends one request and reads the whole response.
//
// The path is appended to the base URL as-is; it is not escaped or interpreted by us, so a
// path parameter like "women's clothing" reaches the transport unchanged. The body may be nil,
// a string or []byte to send exactly, or any other value to be sent as JSON.
//
// If the service could not be reached or the response could not be read, the error is a
// *TransportError. Any HTTP status, including 4xx and 5xx, is a successful Execute.
func (r *RequestTemplate) Execute(ctx context.Context, method, path string, body interface{}) (*Response, error) {
	data, err := encodeBody(body)
	if err != nil {
		return nil, fmt.Errorf("could not encode request body: %w", err)
	}
	target := r.urlFor(path)

	var bodyReader io.Reader
	if data != nil {
		bodyReader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, target.String(), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("could not create %s request for %q: %w", method, path, err)
	}
	// NewRequest re-parses the URL string; keep our own URL so the path is exactly what we built
	req.URL = target
	req.Header = r.headers.Clone()

	r.logger.Printf(">> %s", curlCommand(method, target.String(), req.Header, data))

	start := time.Now()
	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.logger.Printf("<< transport error after %dms: %s", time.Since(start).Milliseconds(), err)
		return nil, &TransportError{Method: method, URL: target.String(), Err: err}
	}
	respData, err := readAndClose(resp.Body)
	elapsed := time.Since(start)
	if err != nil {
		r.logger.Printf("<< transport error reading body after %dms: %s", elapsed.Milliseconds(), err)
		return nil, &TransportError{Method: method, URL: target.String(), Err: err}
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Elapsed:    elapsed,
		RawBody:    string(respData),
		Body:       ParseBody(respData),
	}
	r.logger.Printf("<< %d (%dms) %s", result.StatusCode, result.ElapsedMillis(), result.RawBody)
	return result, nil
}

func (r *RequestTemplate) Get(ctx context.Context, path string) (*Response, error) {
	return r.Execute(ctx, http.MethodGet, path, nil)
}

func (r *RequestTemplate) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return r.Execute(ctx, http.MethodPost, path, body)
}

func (r *RequestTemplate) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return r.Execute(ctx, http.MethodPut, path, body)
}

func (r *RequestTemplate) Delete(ctx context.Context, path string) (*Response, error) {
	return r.Execute(ctx, http.MethodDelete, path, nil)
}

func (r *RequestTemplate) urlFor(path string) *url.URL {
	u := *r.baseURL
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u.Path = r.baseURL.Path + path
	u.RawPath = ""
	return &u
}

func encodeBody(body interface{}) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case string:
		return []byte(b), nil
	case json.RawMessage:
		return b, nil
	default:
		return json.Marshal(body)
	}
}

// readAndClose reads the entire body and always closes it, so the connection is released on
// both the success path and the error path.
func readAndClose(body io.ReadCloser) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	defer func() { _ = body.Close() }()
	return io.ReadAll(body)
}
