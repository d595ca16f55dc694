package network

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"slices"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

// errNoH2 reports a handshake in which the server did not select h2.
var errNoH2 = errors.New("server did not negotiate h2")

// fingerprintTransport presents a Chrome 120 ClientHello so the site's anti-bot
// proxy treats requests like browser traffic.
//
// Chrome advertises h2 and http/1.1, so the HTTP/2 transport dials first. When
// ALPN settles on anything but h2 the connection is dropped before a request is
// written and the request goes out once over HTTP/1.1 instead. Any other failure
// is returned as is.
type fingerprintTransport struct {
	h2 http.RoundTripper
	h1 http.RoundTripper
}

func newFingerprintTransport(timeout time.Duration) *fingerprintTransport {
	dialer := &net.Dialer{Timeout: timeout}

	return &fingerprintTransport{
		h2: &http2.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				conn, err := dialChrome(ctx, dialer, network, addr, nil)
				if err != nil {
					return nil, err
				}
				if proto := conn.ConnectionState().NegotiatedProtocol; proto != http2.NextProtoTLS {
					_ = conn.Close()
					return nil, fmt.Errorf("%w (got %q)", errNoH2, proto)
				}
				return conn, nil
			},
		},
		h1: &http.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				conn, err := dialChrome(ctx, dialer, network, addr, []string{"http/1.1"})
				if err != nil {
					return nil, err
				}
				return conn, nil
			},
			ResponseHeaderTimeout: timeout,
		},
	}
}

func (t *fingerprintTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return t.h1.RoundTrip(req)
	}

	resp, err := t.h2.RoundTrip(req)
	if err == nil || !errors.Is(err, errNoH2) {
		return resp, err
	}

	return t.h1.RoundTrip(req.Clone(req.Context()))
}

// chromeSpec returns the Chrome 120 hello. A non-empty protos replaces the
// advertised ALPN list; without h2 in it the ALPS extension is left out too.
func chromeSpec(protos []string) (*utls.ClientHelloSpec, error) {
	spec, err := utls.UTLSIdToSpec(utls.HelloChrome_120)
	if err != nil {
		return nil, err
	}
	if len(protos) == 0 {
		return &spec, nil
	}

	extensions := spec.Extensions[:0]
	for _, ext := range spec.Extensions {
		switch ext := ext.(type) {
		case *utls.ALPNExtension:
			ext.AlpnProtocols = protos
		case *utls.ApplicationSettingsExtension:
			if !slices.Contains(protos, http2.NextProtoTLS) {
				continue
			}
		}
		extensions = append(extensions, ext)
	}
	spec.Extensions = extensions

	return &spec, nil
}

func dialChrome(ctx context.Context, dialer *net.Dialer, network, addr string, protos []string) (*utls.UConn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	spec, err := chromeSpec(protos)
	if err != nil {
		return nil, fmt.Errorf("chrome hello: %w", err)
	}

	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
	}, utls.HelloCustom)

	if err := tlsConn.ApplyPreset(spec); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("chrome hello: %w", err)
	}

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}
