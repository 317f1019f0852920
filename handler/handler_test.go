package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhub/taskhub/handler"
	"github.com/taskhub/taskhub/pkg/binder"
	"github.com/taskhub/taskhub/pkg/validator"
)

type echoRequest struct {
	Name string `json:"name"`
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) handler.JSONResponse {
	t.Helper()
	var resp handler.JSONResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("binds and renders json", func(t *testing.T) {
		t.Parallel()

		h := handler.Wrap(
			handler.HandlerFunc[handler.Context, echoRequest](func(ctx handler.Context, req echoRequest) handler.Response {
				return handler.JSON(map[string]string{"greeting": "hello " + req.Name})
			}),
			handler.WithBinders[handler.Context, echoRequest](binder.JSON()),
		)

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"dev"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "hello dev")
	})

	t.Run("bind failure goes through error handler", func(t *testing.T) {
		t.Parallel()

		h := handler.Wrap(
			handler.HandlerFunc[handler.Context, echoRequest](func(ctx handler.Context, req echoRequest) handler.Response {
				return handler.JSON(nil)
			}),
			handler.WithBinders[handler.Context, echoRequest](binder.JSON()),
			handler.WithErrorHandler[handler.Context, echoRequest](
				handler.BindErrorHandler[handler.Context](nil, binder.ErrFailedToParseJSON, binder.ErrMissingContentType),
			),
		)

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`not json`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeBody(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "bad_request", resp.Error.Code)
	})

	t.Run("nil response is a server error", func(t *testing.T) {
		t.Parallel()

		h := handler.Wrap(
			handler.HandlerFunc[handler.Context, echoRequest](func(ctx handler.Context, req echoRequest) handler.Response {
				return nil
			}),
		)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("custom status", func(t *testing.T) {
		t.Parallel()

		h := handler.Wrap(
			handler.HandlerFunc[handler.Context, echoRequest](func(ctx handler.Context, req echoRequest) handler.Response {
				return handler.JSON(map[string]string{"id": "123"}, handler.WithJSONStatus(http.StatusCreated))
			}),
		)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	render := func(t *testing.T, err error) (*httptest.ResponseRecorder, handler.JSONResponse) {
		t.Helper()
		rec := httptest.NewRecorder()
		resp := handler.JSONError(err)
		require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
		return rec, decodeBody(t, rec)
	}

	t.Run("validation errors map to 400 with details", func(t *testing.T) {
		t.Parallel()

		verrs := validator.ValidationErrors{
			{Field: "email", Message: "invalid email address"},
			{Field: "password", Message: "password must contain at least one digit"},
		}

		rec, resp := render(t, verrs)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "validation_error", resp.Error.Code)
		assert.Equal(t, []string{"invalid email address"}, resp.Error.Details["email"])
	})

	t.Run("http error keeps its status and key", func(t *testing.T) {
		t.Parallel()

		rec, resp := render(t, handler.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "not_found", resp.Error.Code)
	})

	t.Run("http error with message", func(t *testing.T) {
		t.Parallel()

		rec, resp := render(t, handler.NewHTTPErrorWithMessage(http.StatusUnauthorized, "unauthorized", "Invalid email or password"))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "Invalid email or password", resp.Error.Message)
	})

	t.Run("unknown errors map to 500 without leaking details", func(t *testing.T) {
		t.Parallel()

		rec, resp := render(t, assert.AnError)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "internal_error", resp.Error.Code)
		assert.NotContains(t, resp.Error.Message, assert.AnError.Error())
	})
}
