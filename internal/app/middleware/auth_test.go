package middlware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	appContext "github.com/ujwegh/gamemart/internal/app/context"
	appErrors "github.com/ujwegh/gamemart/internal/app/errors"
	"github.com/ujwegh/gamemart/internal/app/models"
)

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GetTelegramID(tokenString string) (int64, error) {
	args := m.Called(tokenString)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenService) GenerateToken(telegramID int64) (string, error) {
	args := m.Called(telegramID)
	return args.String(0), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) EnsureUser(ctx context.Context, telegramID int64, username string) (*models.User, error) {
	args := m.Called(ctx, telegramID, username)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserService) GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	args := m.Called(ctx, telegramID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	user := &models.User{ID: 7, TelegramID: 4242}
	tests := []struct {
		name             string
		authHeader       string
		mockTokenService func() *MockTokenService
		mockUserService  func() *MockUserService
		wantStatusCode   int
		wantResponseBody string
	}{
		{
			name:       "Valid token",
			authHeader: "Bearer good-token",
			mockTokenService: func() *MockTokenService {
				m := &MockTokenService{}
				m.On("GetTelegramID", "good-token").Return(int64(4242), nil)
				return m
			},
			mockUserService: func() *MockUserService {
				m := &MockUserService{}
				m.On("GetByTelegramID", mock.Anything, int64(4242)).Return(user, nil)
				return m
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:             "Missing token",
			authHeader:       "",
			mockTokenService: func() *MockTokenService { return &MockTokenService{} },
			mockUserService:  func() *MockUserService { return &MockUserService{} },
			wantStatusCode:   http.StatusUnauthorized,
			wantResponseBody: `{"code":401,"message":"Unauthorized: Missing token"}`,
		},
		{
			name:             "Wrong scheme",
			authHeader:       "Basic YWRtaW46YWRtaW4=",
			mockTokenService: func() *MockTokenService { return &MockTokenService{} },
			mockUserService:  func() *MockUserService { return &MockUserService{} },
			wantStatusCode:   http.StatusUnauthorized,
			wantResponseBody: `{"code":401,"message":"Unauthorized: Missing token"}`,
		},
		{
			name:       "Invalid token",
			authHeader: "Bearer bad-token",
			mockTokenService: func() *MockTokenService {
				m := &MockTokenService{}
				m.On("GetTelegramID", "bad-token").Return(int64(0), errors.New("token error"))
				return m
			},
			mockUserService:  func() *MockUserService { return &MockUserService{} },
			wantStatusCode:   http.StatusUnauthorized,
			wantResponseBody: `{"code":401,"message":"Unauthorized: Invalid token"}`,
		},
		{
			name:       "Unknown user",
			authHeader: "Bearer good-token",
			mockTokenService: func() *MockTokenService {
				m := &MockTokenService{}
				m.On("GetTelegramID", "good-token").Return(int64(4242), nil)
				return m
			},
			mockUserService: func() *MockUserService {
				m := &MockUserService{}
				m.On("GetByTelegramID", mock.Anything, int64(4242)).Return(nil, appErrors.ErrNotFound)
				return m
			},
			wantStatusCode:   http.StatusUnauthorized,
			wantResponseBody: `{"code":401,"message":"Unauthorized: User not found"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			am := NewAuthMiddleware(tt.mockTokenService(), tt.mockUserService(), 5)
			var seen *models.User
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = appContext.User(r.Context())
				w.WriteHeader(http.StatusOK)
			})
			req := httptest.NewRequest(http.MethodGet, "/api/user/balance", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			am.Authenticate(next).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			if tt.wantResponseBody == "" {
				assert.Equal(t, user, seen)
			} else {
				assert.Nil(t, seen)
				assert.JSONEq(t, tt.wantResponseBody, w.Body.String())
			}
		})
	}
}
