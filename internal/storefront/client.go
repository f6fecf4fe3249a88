package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	// TokenHeader carries the public storefront access token
	TokenHeader = "X-Shopify-Storefront-Access-Token"
	// RequestIDHeader correlates a request with log lines on both ends
	RequestIDHeader = "X-Request-ID"

	maxResponseBytes = 8 << 20
)

// Options configures a Client
type Options struct {
	Endpoint    string
	AccessToken string
	Country     string
	Language    string

	Timeout         time.Duration
	BreakerFailures uint32
	BreakerCooldown time.Duration

	// Transport is wrapped with tracing; http.DefaultTransport when nil
	Transport http.RoundTripper
}

// Client talks to the Storefront GraphQL API
type Client struct {
	endpoint string
	token    string
	country  string
	language string

	http    *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
	docs    map[string]*ast.QueryDocument
}

// LineInput is one merchandise line of a cart mutation
type LineInput struct {
	MerchandiseID string `json:"merchandiseId"`
	Quantity      int    `json:"quantity"`
}

type graphQLRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors GraphQLErrors   `json:"errors"`
}

// statusError is an HTTP status failure; only 5xx trips the breaker
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s: %d %s", ErrStatus, e.code, http.StatusText(e.code))
}

func (e *statusError) Is(target error) bool {
	return target == ErrStatus
}

// NewClient creates a client. Every embedded document is parsed up front so a
// broken query fails at startup rather than on first use.
func NewClient(opts Options) (*Client, error) {
	if opts.Endpoint == "" {
		return nil, errors.New("storefront endpoint is required")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.BreakerFailures == 0 {
		opts.BreakerFailures = 5
	}
	if opts.BreakerCooldown <= 0 {
		opts.BreakerCooldown = 30 * time.Second
	}
	base := opts.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	docs := make(map[string]*ast.QueryDocument, len(documents))
	for op, src := range documents {
		doc, err := parser.ParseQuery(&ast.Source{Name: op, Input: src})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s document", op)
		}
		if doc.Operations.ForName(op) == nil {
			return nil, errors.Errorf("%s document does not define operation %s", op, op)
		}
		docs[op] = doc
	}

	failures := opts.BreakerFailures
	c := &Client{
		endpoint: opts.Endpoint,
		token:    opts.AccessToken,
		country:  opts.Country,
		language: opts.Language,
		http: &http.Client{
			Timeout:   opts.Timeout,
			Transport: otelhttp.NewTransport(base),
		},
		docs: docs,
	}
	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "storefront",
		MaxRequests: 1,
		Timeout:     opts.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warnf("Circuit breaker %s: %s -> %s", name, from, to)
		},
		IsSuccessful: func(err error) bool {
			if err == nil || errors.Is(err, context.Canceled) {
				return true
			}
			var se *statusError
			if errors.As(err, &se) {
				return se.code < http.StatusInternalServerError
			}
			return false
		},
	})

	return c, nil
}

// Endpoint returns the GraphQL URL the client posts to
func (c *Client) Endpoint() string {
	return c.endpoint
}

// withContext adds the buyer context variables the operation declares
func (c *Client) withContext(op string, vars map[string]any) map[string]any {
	def := c.docs[op].Operations.ForName(op)
	if def.VariableDefinitions.ForName("country") != nil && c.country != "" {
		vars["country"] = c.country
	}
	if def.VariableDefinitions.ForName("language") != nil && c.language != "" {
		vars["language"] = c.language
	}
	return vars
}

// do executes an operation and decodes its data into out
func (c *Client) do(ctx context.Context, op string, vars map[string]any, out any) error {
	src, ok := documents[op]
	if !ok {
		return errors.Wrap(ErrUnknownOperation, op)
	}
	if vars == nil {
		vars = map[string]any{}
	}

	body, err := json.Marshal(graphQLRequest{
		Query:         src,
		OperationName: op,
		Variables:     c.withContext(op, vars),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", op)
	}

	requestID := uuid.NewString()
	logger := log.WithFields(log.Fields{"op": op, "request_id": requestID})
	start := time.Now()

	raw, err := c.breaker.Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		req.Header.Set(RequestIDHeader, requestID)
		if c.token != "" {
			req.Header.Set(TokenHeader, c.token)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		if err != nil {
			return nil, err
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, &statusError{code: resp.StatusCode}
		}
		return data, nil
	})
	if err != nil {
		logger.WithError(err).Warnf("Storefront request failed after %v", time.Since(start))
		return errors.Wrapf(err, "%s request failed", op)
	}
	logger.Debugf("Storefront request took %v", time.Since(start))

	var envelope graphQLResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return errors.Wrapf(err, "failed to decode %s response", op)
	}
	if len(envelope.Errors) > 0 {
		return errors.Wrapf(envelope.Errors, "%s", op)
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return errors.Errorf("%s returned no data", op)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return errors.Wrapf(err, "failed to decode %s data", op)
	}
	return nil
}
