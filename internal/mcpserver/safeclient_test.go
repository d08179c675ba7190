package mcpserver

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBlockedIP(t *testing.T) {
	tests := []struct {
		ip      string
		blocked bool
	}{
		{"127.0.0.1", true},      // loopback
		{"10.0.0.1", true},       // private (Class A)
		{"172.16.0.1", true},     // private (Class B)
		{"192.168.1.1", true},    // private (Class C)
		{"169.254.1.1", true},    // link-local
		{"224.0.0.1", true},      // multicast
		{"::1", true},            // IPv6 loopback
		{"0.0.0.0", true},        // unspecified IPv4
		{"fe80::1", true},        // IPv6 link-local
		{"fd00::1", true},        // IPv6 ULA (private)
		{"8.8.8.8", false},       // public
		{"93.184.216.34", false}, // public
	}
	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			ip := net.ParseIP(tt.ip)
			require.NotNil(t, ip, "failed to parse IP: %s", tt.ip)
			assert.Equal(t, tt.blocked, isBlockedIP(ip))
		})
	}
}

func TestNewSafeHTTPClient(t *testing.T) {
	client := newSafeHTTPClient()
	require.NotNil(t, client)
	assert.NotZero(t, client.Timeout)
	assert.NotNil(t, client.CheckRedirect)
	assert.NotNil(t, client.Transport)
}

func TestFetchPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/body.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"userName":"a"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		data, contentType, err := fetchPayload(ctx, srv.Client(), srv.URL+"/body.json", 1024)
		require.NoError(t, err)
		assert.Equal(t, `{"userName":"a"}`, string(data))
		assert.Equal(t, "application/json", contentType)
	})

	t.Run("too large", func(t *testing.T) {
		_, _, err := fetchPayload(ctx, srv.Client(), srv.URL+"/body.json", 4)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds maximum 4 bytes")
	})

	t.Run("not found", func(t *testing.T) {
		_, _, err := fetchPayload(ctx, srv.Client(), srv.URL+"/missing", 1024)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("loopback blocked by safe client", func(t *testing.T) {
		_, _, err := fetchPayload(ctx, newSafeHTTPClient(), srv.URL+"/body.json", 1024)
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "blocked"), "got %v", err)
	})
}
