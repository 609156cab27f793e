package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"bankist/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const testTraceID = "550e8400-e29b-41d4-a716-446655440000"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newJSONContext builds a handler context with body encoded as JSON and the
// trace id set the way the request id middleware does
func newJSONContext(e *echo.Echo, method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, testTraceID)
	return c, rec
}

func decodeError(rec *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	return resp
}

func testSnapshot(takenAt time.Time) models.AccountSnapshot {
	return models.AccountSnapshot{
		Username:      "jd",
		Owner:         "Jessica Davis",
		Currency:      "USD",
		Locale:        "en-US",
		Balance:       decimal.NewFromInt(11720),
		Income:        decimal.NewFromInt(16900),
		Expense:       decimal.NewFromInt(-5180),
		Interest:      decimal.RequireFromString("253.5"),
		Movements:     []decimal.Decimal{decimal.NewFromInt(16900), decimal.NewFromInt(-5180)},
		MovementDates: []time.Time{takenAt.AddDate(0, 0, -2), takenAt},
		TakenAt:       takenAt,
	}
}
