package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsehr/attendance-backend-go/internal/domain/employee"
	"github.com/pulsehr/attendance-backend-go/internal/pkg/validator"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccess(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Success(rec, map[string]string{"id": "emp-1"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.NotContains(t, body, "error")
	assert.NotContains(t, body, "meta")
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"clock_in": "clock-in must be a valid HH:MM time"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	errDetail := body["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errDetail["code"])
	details := errDetail["details"].(map[string]interface{})
	assert.Contains(t, details, "clock_in")
}

func TestHandleError_ValidationErrors(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "date", Message: "date must be in YYYY-MM-DD format"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleError_DomainSentinel(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	HandleError(rec, employee.ErrEmployeeNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeBody(t, rec)
	errDetail := body["error"].(map[string]interface{})
	assert.Equal(t, "NOT_FOUND", errDetail["code"])
}

func TestPageMeta(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page       int
		limit      int
		totalItems int64
		totalPages int
	}{
		{"exact multiple", 1, 20, 40, 2},
		{"partial last page", 2, 20, 41, 3},
		{"empty result", 1, 20, 0, 0},
		{"single item", 1, 20, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			meta := PageMeta(tt.page, tt.limit, tt.totalItems)
			assert.Equal(t, tt.page, meta.Page)
			assert.Equal(t, tt.limit, meta.Limit)
			assert.Equal(t, tt.totalItems, meta.TotalItems)
			assert.Equal(t, tt.totalPages, meta.TotalPages)
		})
	}
}

func TestSuccessWithMeta(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	SuccessWithMeta(rec, []string{"a", "b"}, PageMeta(1, 2, 5))

	body := decodeBody(t, rec)
	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, float64(3), meta["total_pages"])
	assert.Equal(t, float64(5), meta["total_items"])
}
