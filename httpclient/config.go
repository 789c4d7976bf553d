package httpclient

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"
)

// Config holds the tuning knobs for NetTransport's underlying
// http.Transport. Start from DefaultConfig and adjust fields as needed:
//
//	cfg := httpclient.DefaultConfig()
//	cfg.Timeout = 5 * time.Second
//	client := httpclient.New(httpclient.WithTransport(httpclient.NewNetTransport(cfg)))
type Config struct {
	// Timeout bounds the entire request lifecycle: connect, TLS,
	// send, and reading the response body. Zero means no timeout.
	Timeout time.Duration

	// MaxIdleConns caps idle keep-alive connections across all hosts.
	MaxIdleConns int

	// MaxIdleConnsPerHost caps idle connections kept per host. Often
	// the most important knob when a service talks mostly to one
	// downstream.
	MaxIdleConnsPerHost int

	// MaxConnsPerHost caps total (idle + active) connections per
	// host. Zero means unlimited.
	MaxConnsPerHost int

	// IdleConnTimeout is how long an idle connection stays pooled.
	IdleConnTimeout time.Duration

	// TLSHandshakeTimeout bounds the TLS handshake.
	TLSHandshakeTimeout time.Duration

	// ExpectContinueTimeout is the wait for a "100 Continue" reply
	// when the Expect header is used for large bodies.
	ExpectContinueTimeout time.Duration

	// DialTimeout bounds TCP connection establishment.
	DialTimeout time.Duration

	// KeepAlive is the TCP keep-alive probe interval.
	KeepAlive time.Duration

	// DisableCompression leaves response bodies as sent, skipping the
	// automatic Accept-Encoding: gzip negotiation.
	DisableCompression bool

	// TLSConfig overrides the TLS client configuration. Nil uses the
	// defaults.
	TLSConfig *tls.Config
}

// DefaultConfig returns a balanced configuration for typical service
// to service calls.
func DefaultConfig() Config {
	return Config{
		Timeout:               15 * time.Second,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		MaxConnsPerHost:       100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		DialTimeout:           5 * time.Second,
		KeepAlive:             30 * time.Second,
		DisableCompression:    false,
	}
}

// buildTransport creates an http.Transport from the configuration.
func (cfg Config) buildTransport() *http.Transport {
	dialer := &net.Dialer{
		Timeout:   cfg.DialTimeout,
		KeepAlive: cfg.KeepAlive,
	}

	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		MaxIdleConns:          cfg.MaxIdleConns,
		MaxIdleConnsPerHost:   cfg.MaxIdleConnsPerHost,
		MaxConnsPerHost:       cfg.MaxConnsPerHost,
		IdleConnTimeout:       cfg.IdleConnTimeout,
		TLSHandshakeTimeout:   cfg.TLSHandshakeTimeout,
		ExpectContinueTimeout: cfg.ExpectContinueTimeout,
		DisableCompression:    cfg.DisableCompression,
		TLSClientConfig:       cfg.TLSConfig,
	}
}
