package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	apierrors "github.com/itsryu/ZeDoBambu/internal/system/errors"
	"github.com/itsryu/ZeDoBambu/internal/system/log"
)

// APIResponse is the uniform response envelope returned by every endpoint.
type APIResponse struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Timestamp  string      `json:"timestamp"`
}

// WriteSuccess writes a success envelope with the given status code.
func WriteSuccess(w http.ResponseWriter, statusCode int, message string, data interface{}) {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
}

// WriteError writes an error envelope with the given status code.
func WriteError(w http.ResponseWriter, statusCode int, message, errorDetails string) {

	if errorDetails == "" {
		errorDetails = message
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{
		StatusCode: statusCode,
		Message:    message,
		Error:      errorDetails,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleError maps an error to an HTTP error response. Client errors keep
// their status code and coded description; everything else becomes a 500.
func HandleError(w http.ResponseWriter, err error) {

	var clientError *apierrors.ClientError
	if errors.As(err, &clientError) {
		WriteError(w, clientError.StatusCode, clientError.Message, clientError.Description)
		return
	}

	var serverError *apierrors.ServerError
	if errors.As(err, &serverError) {
		log.GetLogger().Error(serverError.Error())
		WriteError(w, http.StatusInternalServerError, "Internal server error.", serverError.Message)
		return
	}

	log.GetLogger().Error("Unclassified error at the HTTP boundary.", log.Error(err))
	WriteError(w, http.StatusInternalServerError, "Internal server error.", "")
}

// ExtractBearerToken pulls the token out of the Authorization header.
func ExtractBearerToken(r *http.Request) (string, error) {

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", apierrors.NewClientError(apierrors.NO_TOKEN, http.StatusUnauthorized)
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")), nil
}

// DecodeJSONBody decodes the request body into v, rejecting unknown syntax
// with a coded bad-request error.
func DecodeJSONBody(r *http.Request, v interface{}) error {

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apierrors.NewClientErrorWithDescription(
			apierrors.BAD_REQUEST, err.Error(), http.StatusBadRequest)
	}
	return nil
}
