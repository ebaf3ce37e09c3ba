package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponseWriter(rr *httptest.ResponseRecorder) *responseWriter {
	return &responseWriter{ResponseWriter: rr}
}

func TestResponseWriter_WriteHeader_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		statusCodes    []int
		expectedStatus int
	}{
		{
			name:           "201 Created",
			statusCodes:    []int{http.StatusCreated},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "409 Conflict",
			statusCodes:    []int{http.StatusConflict},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "503 Service Unavailable",
			statusCodes:    []int{http.StatusServiceUnavailable},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:           "double call, first wins",
			statusCodes:    []int{http.StatusCreated, http.StatusInternalServerError},
			expectedStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			for _, code := range tt.statusCodes {
				w.WriteHeader(code)
			}

			assert.Equal(t, tt.expectedStatus, w.status)
			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.True(t, w.wroteHeader)
		})
	}
}

func TestResponseWriter_Write_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		writes       []string
		explicitCode int
		wantStatus   int
		wantSize     int
	}{
		{
			name:       "implicit 200",
			writes:     []string{`[]`},
			wantStatus: http.StatusOK,
			wantSize:   2,
		},
		{
			name:       "multiple writes accumulate size",
			writes:     []string{`[{"id":1}`, `,{"id":2}]`},
			wantStatus: http.StatusOK,
			wantSize:   19,
		},
		{
			name:         "explicit 201 kept",
			writes:       []string{`{"id":7}`},
			explicitCode: http.StatusCreated,
			wantStatus:   http.StatusCreated,
			wantSize:     8,
		},
		{
			name:       "empty write",
			writes:     []string{""},
			wantStatus: http.StatusOK,
			wantSize:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			if tt.explicitCode != 0 {
				w.WriteHeader(tt.explicitCode)
			}

			for _, data := range tt.writes {
				_, err := w.Write([]byte(data))
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantStatus, w.status)
			assert.Equal(t, tt.wantSize, w.size)
			assert.Equal(t, tt.wantSize, rr.Body.Len())
		})
	}
}

func TestResponseWriter_InitialState(t *testing.T) {
	w := newResponseWriter(httptest.NewRecorder())

	assert.Equal(t, 0, w.status)
	assert.Equal(t, 0, w.size)
	assert.False(t, w.wroteHeader)
}

func TestResponseWriter_ProxiesHeadersAndUnwraps(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.Header().Set(traceIDHeader, "abc")
	w.WriteHeader(http.StatusTeapot)

	assert.Equal(t, "abc", rr.Header().Get(traceIDHeader))
	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Same(t, rr, w.Unwrap())
}
