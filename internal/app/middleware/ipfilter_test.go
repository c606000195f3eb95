package middlware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIPFilter_Filter(t *testing.T) {
	tests := []struct {
		name           string
		cidrs          []string
		remoteAddr     string
		wantStatusCode int
	}{
		{name: "No restriction", remoteAddr: "203.0.113.9:4000", wantStatusCode: http.StatusOK},
		{name: "Allowed network", cidrs: []string{"10.0.0.0/8", "192.168.1.0/24"}, remoteAddr: "192.168.1.77:4000", wantStatusCode: http.StatusOK},
		{name: "Outside networks", cidrs: []string{"10.0.0.0/8"}, remoteAddr: "203.0.113.9:4000", wantStatusCode: http.StatusForbidden},
		{name: "IPv6", cidrs: []string{"2001:db8::/32"}, remoteAddr: "[2001:db8::1]:4000", wantStatusCode: http.StatusOK},
		{name: "Address without port", cidrs: []string{"10.0.0.0/8"}, remoteAddr: "10.1.2.3", wantStatusCode: http.StatusOK},
		{name: "Invalid CIDR skipped", cidrs: []string{"not-a-cidr", "10.0.0.0/8"}, remoteAddr: "10.1.2.3:4000", wantStatusCode: http.StatusOK},
		{name: "Garbage address", cidrs: []string{"10.0.0.0/8"}, remoteAddr: "garbage", wantStatusCode: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			req := httptest.NewRequest(http.MethodPost, "/api/webhooks/payment", nil)
			req.RemoteAddr = tt.remoteAddr
			w := httptest.NewRecorder()

			NewIPFilter(tt.cidrs).Filter(next).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
		})
	}
}
