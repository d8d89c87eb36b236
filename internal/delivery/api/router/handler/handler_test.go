package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/delivery/api/validator"
	deliverycontext "marketplace/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// envelope mirrors the JSON body written by the response package.
type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

type testRequest struct {
	method      string
	target      string
	body        string
	contentType string
	userID      uuid.UUID
	params      map[string]string
}

func newTestContext(t *testing.T, req testRequest) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var body io.Reader
	if req.body != "" {
		body = strings.NewReader(req.body)
	}
	httpReq := httptest.NewRequest(req.method, req.target, body)
	contentType := req.contentType
	if contentType == "" {
		contentType = echo.MIMEApplicationJSON
	}
	httpReq.Header.Set(echo.HeaderContentType, contentType)

	rec := httptest.NewRecorder()
	c := e.NewContext(httpReq, rec)

	if req.userID != uuid.Nil {
		c.Set(deliverycontext.KeyUserID, req.userID)
	}
	for name, value := range req.params {
		values := append(c.ParamValues(), value)
		c.SetParamNames(append(c.ParamNames(), name)...)
		c.SetParamValues(values...)
	}

	return c, rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) envelope {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	require.Equal(t, code, env.Error.Code)

	return env
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(t, testRequest{method: http.MethodGet, target: "/health"})

	require.NoError(t, HealthCheck(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, string(decodeEnvelope(t, rec).Data))
}
