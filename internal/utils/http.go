package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-user-registry/models"
)

// WriteJSON serializes data to JSON and writes it with the given status code.
//
// The "Content-Type" header is set to "application/json". If marshaling
// fails the response becomes 500 Internal Server Error and the wrapped
// marshaling error is returned.
//
// Example usage:
//
//	WriteJSON(w, users, http.StatusOK)
//	WriteJSON(w, models.HealthResponse{...}, http.StatusServiceUnavailable)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes the generic {"error": message} payload.
func WriteError(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}
