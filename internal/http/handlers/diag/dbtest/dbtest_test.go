package dbtest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Мок хранилища для диагностики
type StorageMock struct {
	mock.Mock
}

func (m *StorageMock) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *StorageMock) ListCollectionNames(ctx context.Context, max int) ([]string, error) {
	args := m.Called(ctx, max)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func doRequest(t *testing.T, handler *Handler) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, resp
}

func TestDBTestHandler_NoStorage(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")

	handler := New(newNoopLogger(), nil)

	code, resp := doRequest(t, handler)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "✅ Running", resp["backend"])
	assert.Equal(t, "❌ Not Available", resp["database"])
	assert.Equal(t, "Not Connected", resp["connection_status"])
	assert.Equal(t, "❌ Not Set", resp["database_url"])
	assert.Equal(t, "❌ Not Set", resp["database_name"])
	assert.Equal(t, []any{}, resp["collections"])
}

// Индикаторы окружения заполняются и без хранилища.
func TestDBTestHandler_EnvIndicatorsWithoutStorage(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "trading_store")

	handler := New(newNoopLogger(), nil)

	code, resp := doRequest(t, handler)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "❌ Not Available", resp["database"])
	assert.Equal(t, "✅ Set", resp["database_url"])
	assert.Equal(t, "✅ Set", resp["database_name"])
}

func TestDBTestHandler_PingFails(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "trading_store")

	storageMock := new(StorageMock)
	storageMock.On("Ping", mock.Anything).Return(errors.New("no reachable servers")).Once()

	handler := New(newNoopLogger(), storageMock)

	code, resp := doRequest(t, handler)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "❌ Not Available", resp["database"])
	assert.Equal(t, "Not Connected", resp["connection_status"])
	assert.Equal(t, "✅ Set", resp["database_url"])
	assert.Equal(t, "✅ Set", resp["database_name"])
	storageMock.AssertExpectations(t)
}

func TestDBTestHandler_ListFails(t *testing.T) {
	storageMock := new(StorageMock)
	storageMock.On("Ping", mock.Anything).Return(nil).Once()
	storageMock.On("ListCollectionNames", mock.Anything, 10).
		Return(nil, errors.New(strings.Repeat("x", 80))).Once()

	handler := New(newNoopLogger(), storageMock)

	code, resp := doRequest(t, handler)

	assert.Equal(t, http.StatusOK, code)
	// Текст ошибки усечён до 50 символов
	assert.Equal(t, "⚠️  Connected but Error: "+strings.Repeat("x", 50), resp["database"])
	assert.Equal(t, "Connected", resp["connection_status"])
	storageMock.AssertExpectations(t)
}

// Усечение считает руны, а не байты: многобайтный текст ошибки
// не должен резаться посередине символа.
func TestDBTestHandler_ListFailsMultibyte(t *testing.T) {
	storageMock := new(StorageMock)
	storageMock.On("Ping", mock.Anything).Return(nil).Once()
	storageMock.On("ListCollectionNames", mock.Anything, 10).
		Return(nil, errors.New(strings.Repeat("я", 60))).Once()

	handler := New(newNoopLogger(), storageMock)

	code, resp := doRequest(t, handler)

	assert.Equal(t, http.StatusOK, code)
	status := resp["database"].(string)
	assert.Equal(t, "⚠️  Connected but Error: "+strings.Repeat("я", 50), status)
	assert.True(t, strings.HasSuffix(status, "я"))
	storageMock.AssertExpectations(t)
}

func TestDBTestHandler_Working(t *testing.T) {
	storageMock := new(StorageMock)
	storageMock.On("Ping", mock.Anything).Return(nil).Once()
	storageMock.On("ListCollectionNames", mock.Anything, 10).
		Return([]string{"user", "product"}, nil).Once()

	handler := New(newNoopLogger(), storageMock)

	code, resp := doRequest(t, handler)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "✅ Connected & Working", resp["database"])
	assert.Equal(t, []any{"user", "product"}, resp["collections"])
	storageMock.AssertExpectations(t)
}
