package middlware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	appContext "github.com/ujwegh/gamemart/internal/app/context"
)

func TestRequestLogger(t *testing.T) {
	inbound := uuid.NewString()
	tests := []struct {
		name      string
		header    string
		wantReuse bool
	}{
		{name: "Reuses inbound id", header: inbound, wantReuse: true},
		{name: "Generates id", header: ""},
		{name: "Replaces invalid id", header: "not-a-uuid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = appContext.RequestID(r.Context())
				w.WriteHeader(http.StatusTeapot)
				_, _ = w.Write([]byte("short and stout"))
			})
			req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
			if tt.header != "" {
				req.Header.Set(requestIDHeader, tt.header)
			}
			w := httptest.NewRecorder()

			RequestLogger(ResponseLogger(next)).ServeHTTP(w, req)

			assert.Equal(t, http.StatusTeapot, w.Code)
			assert.Equal(t, seen, w.Header().Get(requestIDHeader))
			_, err := uuid.Parse(seen)
			assert.NoError(t, err)
			if tt.wantReuse {
				assert.Equal(t, inbound, seen)
			} else {
				assert.NotEqual(t, tt.header, seen)
			}
		})
	}
}

func TestLoggingResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	data := &responseData{status: http.StatusOK}
	lw := &loggingResponseWriter{ResponseWriter: rec, responseData: data}

	lw.WriteHeader(http.StatusCreated)
	_, _ = lw.Write([]byte("hello"))
	_, _ = lw.Write([]byte(" world"))

	assert.Equal(t, http.StatusCreated, data.status)
	assert.Equal(t, 11, data.size)
}
