package middlware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminMiddleware_Authenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name           string
		hash           string
		user           string
		password       string
		withAuth       bool
		wantStatusCode int
		wantChallenge  bool
	}{
		{name: "Valid credentials", hash: string(hash), user: "admin", password: "s3cret", withAuth: true, wantStatusCode: http.StatusOK},
		{name: "Wrong password", hash: string(hash), user: "admin", password: "guess", withAuth: true, wantStatusCode: http.StatusUnauthorized, wantChallenge: true},
		{name: "Wrong user", hash: string(hash), user: "root", password: "s3cret", withAuth: true, wantStatusCode: http.StatusUnauthorized, wantChallenge: true},
		{name: "No credentials", hash: string(hash), wantStatusCode: http.StatusUnauthorized, wantChallenge: true},
		{name: "Disabled", hash: "", user: "admin", password: "s3cret", withAuth: true, wantStatusCode: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})
			req := httptest.NewRequest(http.MethodPost, "/api/admin/orders/79927398713/refund", nil)
			if tt.withAuth {
				req.SetBasicAuth(tt.user, tt.password)
			}
			w := httptest.NewRecorder()

			NewAdminMiddleware(tt.hash).Authenticate(next).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.Equal(t, tt.wantStatusCode == http.StatusOK, called)
			if tt.wantChallenge {
				assert.Equal(t, `Basic realm="admin"`, w.Header().Get("WWW-Authenticate"))
			}
		})
	}
}
