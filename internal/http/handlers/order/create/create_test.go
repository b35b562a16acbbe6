package create

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magabrotheeeer/trading-store/internal/http/middlewarectx"
	"github.com/magabrotheeeer/trading-store/internal/models"
	"github.com/magabrotheeeer/trading-store/internal/storage/mongodb"
)

// Мок сервиса заказов
type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Create(ctx context.Context, userID, productID string) (string, string, error) {
	args := m.Called(ctx, userID, productID)
	return args.String(0), args.String(1), args.Error(2)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestCreateHandler_ServeHTTP(t *testing.T) {
	user := &models.User{
		ID:    primitive.NewObjectID(),
		Email: "user@example.com",
		Role:  models.RoleUser,
	}

	tests := []struct {
		name           string
		requestBody    any
		noUser         bool
		mockID         string
		mockStatus     string
		mockErr        error
		wantStatusCode int
		wantError      string
	}{
		{
			name:           "successful order",
			requestBody:    Request{ProductID: "64f000000000000000000002"},
			mockID:         "order-id",
			mockStatus:     models.OrderStatusPaid,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid product id",
			requestBody:    Request{ProductID: "not-an-oid"},
			mockErr:        mongodb.ErrInvalidID,
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid product id",
		},
		{
			name:           "product not found",
			requestBody:    Request{ProductID: "64f000000000000000000002"},
			mockErr:        mongodb.ErrNotFound,
			wantStatusCode: http.StatusNotFound,
			wantError:      "product not found",
		},
		{
			name:           "storage error",
			requestBody:    Request{ProductID: "64f000000000000000000002"},
			mockErr:        errors.New("db error"),
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "could not create order",
		},
		{
			name:           "missing product id",
			requestBody:    Request{},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field ProductID is a required field",
		},
		{
			name:           "no user in context",
			requestBody:    Request{ProductID: "64f000000000000000000002"},
			noUser:         true,
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcMock := new(ServiceMock)
			handler := New(newNoopLogger(), svcMock)

			if tt.mockID != "" || tt.mockErr != nil {
				svcMock.On("Create", mock.Anything, user.ID.Hex(), mock.Anything).
					Return(tt.mockID, tt.mockStatus, tt.mockErr).Once()
			}

			bodyBytes, err := json.Marshal(tt.requestBody)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(bodyBytes))
			if !tt.noUser {
				ctx := context.WithValue(req.Context(), middlewarectx.CurrentUser, user)
				req = req.WithContext(ctx)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			if tt.wantError != "" {
				assert.Contains(t, resp["error"], tt.wantError)
			} else {
				assert.Equal(t, tt.mockID, resp["id"])
				assert.Equal(t, models.OrderStatusPaid, resp["status"])
			}

			svcMock.AssertExpectations(t)
		})
	}
}
