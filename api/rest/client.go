// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/cenkalti/backoff/v4"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	mtrace "github.com/ava-labs/movetx/trace"
)

const (
	DefaultMaxAttempts = 3
	DefaultTimeout     = 10 * time.Second

	retryInitialInterval = 100 * time.Millisecond
	retryMaxInterval     = 2 * time.Second
	retryMaxElapsedTime  = 30 * time.Second

	maxResponseSize = 16 * 1024 * 1024
)

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cli *Client) { cli.http = c }
}

// WithMaxAttempts bounds the attempts of every request, the first one
// included.
func WithMaxAttempts(n int) Option {
	return func(cli *Client) {
		if n > 0 {
			cli.maxAttempts = n
		}
	}
}

// WithBackOff replaces the retry policy. f is called once per request.
func WithBackOff(f func() backoff.BackOff) Option {
	return func(cli *Client) { cli.newBackOff = f }
}

func WithLogger(log logging.Logger) Option {
	return func(cli *Client) { cli.log = log }
}

func WithTracer(tracer trace.Tracer) Option {
	return func(cli *Client) { cli.tracer = tracer }
}

// Client talks to a node's REST API. uri is the versioned base, for
// example "http://127.0.0.1:8080/v1".
type Client struct {
	uri         string
	http        *http.Client
	maxAttempts int
	newBackOff  func() backoff.BackOff
	validate    *validator.Validate
	log         logging.Logger
	tracer      trace.Tracer
}

func New(uri string, opts ...Option) *Client {
	cli := &Client{
		uri:         strings.TrimSuffix(uri, "/"),
		http:        &http.Client{Timeout: DefaultTimeout},
		maxAttempts: DefaultMaxAttempts,
		newBackOff:  defaultBackOff,
		validate:    validator.New(),
		log:         logging.NoLog{},
		tracer:      mtrace.Noop,
	}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

func defaultBackOff() backoff.BackOff {
	return &backoff.ExponentialBackOff{
		InitialInterval:     retryInitialInterval,
		RandomizationFactor: backoff.DefaultRandomizationFactor,
		Multiplier:          backoff.DefaultMultiplier,
		MaxInterval:         retryMaxInterval,
		MaxElapsedTime:      retryMaxElapsedTime,
		Stop:                backoff.Stop,
		Clock:               backoff.SystemClock,
	}
}

type request struct {
	name        string
	method      string
	path        string
	body        []byte
	contentType string
}

type response struct {
	header http.Header
	body   []byte
}

// send performs r with retries. Transport failures, 429 and 5xx answers
// are retried; every other failure is returned immediately.
func (cli *Client) send(ctx context.Context, r request) (*response, error) {
	ctx, span := cli.tracer.Start(ctx, "rest.Client."+r.name)
	defer span.End()

	attempts := 0
	operation := func() (*response, error) {
		attempts++
		resp, err := cli.sendOnce(ctx, r)
		if err == nil {
			return resp, nil
		}
		var httpErr *HTTPError
		if errors.As(err, &httpErr) && !httpErr.retryable() {
			return nil, backoff.Permanent(err)
		}
		if attempts >= cli.maxAttempts {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}
	notify := func(err error, wait time.Duration) {
		cli.log.Warn("retrying request",
			zap.String("method", r.name),
			zap.Int("attempts", attempts),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	}
	resp, err := backoff.RetryNotifyWithData(operation, backoff.WithContext(cli.newBackOff(), ctx), notify)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.name, err)
	}
	return resp, nil
}

func (cli *Client) sendOnce(ctx context.Context, r request) (*response, error) {
	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}
	req, err := http.NewRequestWithContext(ctx, r.method, cli.uri+r.path, body)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("Accept", JSONContentType)
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}

	start := time.Now()
	resp, err := cli.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, err
	}
	cli.log.Debug("request completed",
		zap.String("method", r.name),
		zap.String("path", r.path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("t", time.Since(start)),
	)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &HTTPError{Code: resp.StatusCode, Body: string(b)}
	}
	return &response{header: resp.Header, body: b}, nil
}

// get fetches path and decodes the answer into out.
func (cli *Client) get(ctx context.Context, name string, path string, out any) (*response, error) {
	resp, err := cli.send(ctx, request{name: name, method: http.MethodGet, path: path})
	if err != nil {
		return nil, err
	}
	return resp, decode(name, resp.body, out)
}

// post sends body as contentType and decodes the answer into out.
func (cli *Client) post(ctx context.Context, name string, path string, contentType string, body []byte, out any) error {
	resp, err := cli.send(ctx, request{
		name:        name,
		method:      http.MethodPost,
		path:        path,
		body:        body,
		contentType: contentType,
	})
	if err != nil {
		return err
	}
	return decode(name, resp.body, out)
}

func decode(name string, b []byte, out any) error {
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidResponse, name, err)
	}
	return nil
}

func (cli *Client) validateStruct(name string, v any) error {
	if err := cli.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidResponse, name, err)
	}
	return nil
}
