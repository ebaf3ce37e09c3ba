package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-registry/internal/app"
	"github.com/MKhiriev/go-user-registry/internal/service"
	"github.com/MKhiriev/go-user-registry/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrValidation: http.StatusBadRequest,

	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrStoreUnavailable:  http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

var statusMessageMap = map[int]string{
	http.StatusBadRequest:          app.MsgUsernameAndEmailRequired,
	http.StatusConflict:            app.MsgUserAlreadyExists,
	http.StatusInternalServerError: app.MsgInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromStatus(status int) string {
	if msg, ok := statusMessageMap[status]; ok {
		return msg
	}
	return app.MsgInternalServerError
}
