package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/itsryu/ZeDoBambu/internal/system/errors"
	"github.com/itsryu/ZeDoBambu/internal/system/log"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestWriteSuccess_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteSuccess(rec, http.StatusCreated, "Created.", map[string]string{"id": "x"})

	resp := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Created.", resp.Message)
	assert.NotEmpty(t, resp.Timestamp)
	assert.Empty(t, resp.Error)
}

func TestHandleError_ClientErrorKeepsStatus(t *testing.T) {
	rec := httptest.NewRecorder()

	HandleError(rec, apierrors.NewClientError(apierrors.PRODUCT_NOT_FOUND, http.StatusNotFound))

	resp := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, resp.Error)
}

func TestHandleError_ServerErrorBecomes500(t *testing.T) {
	rec := httptest.NewRecorder()

	HandleError(rec, apierrors.NewServerError(apierrors.GET_PROFILE, assert.AnError))

	resp := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error.", resp.Message)
}

func TestHandleError_UnknownErrorBecomes500(t *testing.T) {
	rec := httptest.NewRecorder()

	HandleError(rec, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestExtractBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer abc.def.ghi")

	token, err := ExtractBearerToken(req)

	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)
}

func TestExtractBearerToken_MissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := ExtractBearerToken(req)

	var clientErr *apierrors.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusUnauthorized, clientErr.StatusCode)
}

func TestExtractBearerToken_WrongScheme(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	_, err := ExtractBearerToken(req)

	assert.Error(t, err)
}

func TestDecodeJSONBody_Malformed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not-json"))

	var out map[string]interface{}
	err := DecodeJSONBody(req, &out)

	var clientErr *apierrors.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
}
