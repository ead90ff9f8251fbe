package requestmeta

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestScheme(t *testing.T) {
	t.Parallel()

	plain := httptest.NewRequest(http.MethodGet, "/", nil)
	secure := httptest.NewRequest(http.MethodGet, "/", nil)
	secure.TLS = &tls.ConnectionState{}
	forwarded := httptest.NewRequest(http.MethodGet, "/", nil)
	forwarded.Header.Set("X-Forwarded-Proto", "HTTPS")

	tests := []struct {
		name   string
		r      *http.Request
		policy SchemePolicy
		want   string
	}{
		{name: "nil request", r: nil, want: ""},
		{name: "plain", r: plain, want: "http"},
		{name: "tls", r: secure, want: "https"},
		{name: "forwarded untrusted", r: forwarded, want: "http"},
		{name: "forwarded trusted", r: forwarded, policy: SchemePolicy{TrustForwardedProto: true}, want: "https"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Scheme(tc.r, tc.policy); got != tc.want {
				t.Fatalf("Scheme() = %q, want %q", got, tc.want)
			}
		})
	}
	if !IsHTTPSWithPolicy(secure, SchemePolicy{}) {
		t.Fatal("expected tls request to be https")
	}
}

func TestSameOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		origin  string
		referer string
		want    bool
	}{
		{name: "no proof", want: false},
		{name: "matching origin", origin: "http://example.com", want: true},
		{name: "explicit default port", origin: "http://example.com:80", want: true},
		{name: "other host", origin: "http://evil.test", want: false},
		{name: "other scheme", origin: "https://example.com", want: false},
		{name: "referer fallback", referer: "http://example.com/settings", want: true},
		{name: "foreign referer", referer: "http://evil.test/settings", want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/settings/reset", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			if tc.referer != "" {
				req.Header.Set("Referer", tc.referer)
			}
			if got := SameOrigin(req, SchemePolicy{}); got != tc.want {
				t.Fatalf("SameOrigin() = %t, want %t", got, tc.want)
			}
		})
	}
}
