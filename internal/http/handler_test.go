package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contractflow/backend/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestParseDate(t *testing.T) {
	t.Run("accepts supported layouts", func(t *testing.T) {
		for _, raw := range []string{
			"2026-03-01",
			"2026-03-01T10:30:00",
			"2026-03-01T10:30:00Z",
		} {
			parsed, err := parseDate(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, 2026, parsed.Year())
			assert.Equal(t, time.March, parsed.Month())
		}
	})

	t.Run("rejects empty and malformed input", func(t *testing.T) {
		for _, raw := range []string{"", "  ", "01/03/2026", "yesterday"} {
			_, err := parseDate(raw)
			assert.Error(t, err, raw)
		}
	})
}

func TestHandleError(t *testing.T) {
	handler := &Handler{log: zerolog.Nop()}

	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: bad value", service.ErrInvalidInput), http.StatusBadRequest},
		{fmt.Errorf("%w: contract missing", service.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: duplicate", service.ErrConflict), http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		recorder := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(recorder)
		handler.handleError(c, tc.err)
		assert.Equal(t, tc.status, recorder.Code, tc.err.Error())
	}
}

func TestPathID(t *testing.T) {
	t.Run("parses a valid uuid", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(recorder)
		c.Params = gin.Params{{Key: "id", Value: "0b7f3a1e-9c1d-4a02-8b3f-64d9aa1f2c55"}}

		id, ok := pathID(c)
		assert.True(t, ok)
		assert.Equal(t, "0b7f3a1e-9c1d-4a02-8b3f-64d9aa1f2c55", id.String())
	})

	t.Run("answers 400 on garbage", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(recorder)
		c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

		_, ok := pathID(c)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestDateRange(t *testing.T) {
	t.Run("absent filters return nil", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(recorder)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/reports/penalties", nil)

		from, to, ok := dateRange(c)
		assert.True(t, ok)
		assert.Nil(t, from)
		assert.Nil(t, to)
	})

	t.Run("parses both bounds", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(recorder)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/reports/penalties?from=2026-01-01&to=2026-02-01", nil)

		from, to, ok := dateRange(c)
		require.True(t, ok)
		require.NotNil(t, from)
		require.NotNil(t, to)
		assert.True(t, from.Before(*to))
	})

	t.Run("rejects an inverted range", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(recorder)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/reports/penalties?from=2024-05-01&to=2024-01-01", nil)

		_, _, ok := dateRange(c)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("accepts equal bounds", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(recorder)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/reports/penalties?from=2024-01-01&to=2024-01-01", nil)

		_, _, ok := dateRange(c)
		assert.True(t, ok)
	})

	t.Run("rejects malformed bound", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(recorder)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/reports/penalties?from=soon", nil)

		_, _, ok := dateRange(c)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
