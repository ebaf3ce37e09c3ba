package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/mock"
	"github.com/MKhiriev/go-user-registry/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newHandlerWithAppInfo(t *testing.T, version string) *Handler {
	t.Helper()

	ctrl := gomock.NewController(t)
	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(version).AnyTimes()

	return NewHandler(&service.Services{AppInfoService: appInfo}, logger.Nop())
}

func TestGetServerVersion_WritesVersion(t *testing.T) {
	h := newHandlerWithAppInfo(t, "1.2.3")

	rec := httptest.NewRecorder()
	h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestGetServerVersion_VersionWithSpecialChars(t *testing.T) {
	const want = "v2.0.0-beta+build.42"
	h := newHandlerWithAppInfo(t, want)

	rec := httptest.NewRecorder()
	h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, want, rec.Body.String())
}

func TestGetServerVersion_ViaRouter(t *testing.T) {
	h := newHandlerWithAppInfo(t, "3.0.0")

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3.0.0", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
