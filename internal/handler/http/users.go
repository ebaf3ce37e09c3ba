package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-user-registry/internal/app"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/utils"
	"github.com/MKhiriev/go-user-registry/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, "error listing users")
		return
	}

	if _, err = utils.WriteJSON(w, users, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing users response")
	}
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	// an empty body decodes as {} and fails validation like any missing field
	var req models.CreateUserRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			log.Err(errors.Join(ErrRequestBodyTooLarge, err)).Msg("request body too large")
			utils.WriteError(w, app.MsgInvalidJSON, http.StatusRequestEntityTooLarge)
			return
		}

		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	created, err := h.services.UserService.CreateUser(r.Context(), req.ToUser())
	if err != nil {
		h.writeServiceError(w, r, err, "error creating user")
		return
	}

	if _, err = utils.WriteJSON(w, created, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing created user response")
	}
}

// writeServiceError logs err with the request logger and answers with the
// mapped status and its generic message.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", status).Msg(msg)

	utils.WriteError(w, messageFromStatus(status), status)
}
