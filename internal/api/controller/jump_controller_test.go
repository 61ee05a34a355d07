package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/johnzhangfit/verttracker/internal/api/middleware"
	"github.com/johnzhangfit/verttracker/internal/model"
	"github.com/johnzhangfit/verttracker/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockJumpRepo struct {
	mock.Mock
}

func (m *mockJumpRepo) Create(ctx context.Context, record *model.JumpRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockJumpRepo) ListByUser(ctx context.Context, userID, variant string) ([]model.JumpRecord, error) {
	args := m.Called(ctx, userID, variant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.JumpRecord), args.Error(1)
}

// jumpRouter wires the controller behind a stub that injects the user ID the
// way the JWT middleware would.
func jumpRouter(jumpRepo *mockJumpRepo, userRepo *mockUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewJumpService(jumpRepo, userRepo)
	ctrl := NewJumpController(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, "user-1")
	})
	r.POST("/api/record-jump", ctrl.RecordJump)
	r.GET("/api/jumps", ctrl.ListJumps)
	r.GET("/api/summary", ctrl.Summary)
	r.GET("/api/plot", ctrl.Plot)
	return r
}

func TestRecordJumpSuccess(t *testing.T) {
	jumpRepo := new(mockJumpRepo)
	userRepo := new(mockUserRepo)
	userRepo.On("GetByID", mock.Anything, "user-1").Return(&model.User{ID: "user-1"}, nil)
	jumpRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	r := jumpRouter(jumpRepo, userRepo)
	body := `{"variant":"CMJ","hang-time":0.8,"body-weight":80.5,"note":"felt good"}`
	req := httptest.NewRequest(http.MethodPost, "/api/record-jump", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jump recorded successfully")
}

func TestRecordJumpRejectsBadVariant(t *testing.T) {
	r := jumpRouter(new(mockJumpRepo), new(mockUserRepo))
	body := `{"variant":"HOP","hang-time":0.8,"body-weight":80.5}`
	req := httptest.NewRequest(http.MethodPost, "/api/record-jump", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "variant must be either 'MAX'")
}

func TestRecordJumpRejectsMissingHangTime(t *testing.T) {
	r := jumpRouter(new(mockJumpRepo), new(mockUserRepo))
	body := `{"variant":"CMJ","body-weight":80.5}`
	req := httptest.NewRequest(http.MethodPost, "/api/record-jump", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "hang-time must be a positive floating point value")
}

func listRecords() []model.JumpRecord {
	note := "pb attempt"
	return []model.JumpRecord{
		{ID: 1, CreatedAt: time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC), Variant: model.VariantCMJ, Height: 1.2, Weight: 80, Note: &note},
		{ID: 2, CreatedAt: time.Date(2025, 8, 2, 10, 0, 0, 0, time.UTC), Variant: model.VariantCMJ, Height: 0.9, Weight: 81},
	}
}

func TestListJumpsOrdersByHeight(t *testing.T) {
	jumpRepo := new(mockJumpRepo)
	jumpRepo.On("ListByUser", mock.Anything, "user-1", "").Return(listRecords(), nil)

	r := jumpRouter(jumpRepo, new(mockUserRepo))
	req := httptest.NewRequest(http.MethodGet, "/api/jumps?order-by=height&height-unit=cm", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var rows []JumpRow
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.InDelta(t, 90, rows[0].Height, 1e-9)
	assert.InDelta(t, 120, rows[1].Height, 1e-9)
	assert.Equal(t, "Sat 02 Aug 2025", rows[0].Date)
	require.NotNil(t, rows[1].Weight)
	assert.InDelta(t, 80, *rows[1].Weight, 1e-9)
	require.NotNil(t, rows[1].Note)
	assert.Equal(t, "pb attempt", *rows[1].Note)
}

func TestListJumpsAvgRowsOmitWeightAndNote(t *testing.T) {
	jumpRepo := new(mockJumpRepo)
	jumpRepo.On("ListByUser", mock.Anything, "user-1", model.VariantCMJ).Return(listRecords(), nil)

	r := jumpRouter(jumpRepo, new(mockUserRepo))
	req := httptest.NewRequest(http.MethodGet, "/api/jumps?variant=CMJ&aggregation=avg", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "weight")
	assert.NotContains(t, w.Body.String(), "note")
}

func TestListJumpsAvgWithoutVariantFails(t *testing.T) {
	r := jumpRouter(new(mockJumpRepo), new(mockUserRepo))
	req := httptest.NewRequest(http.MethodGet, "/api/jumps?aggregation=avg", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "variant must be specified when aggregation is 'avg'")
}

func TestSummaryResponseShape(t *testing.T) {
	jumpRepo := new(mockJumpRepo)
	jumpRepo.On("ListByUser", mock.Anything, "user-1", "").Return(listRecords(), nil)

	r := jumpRouter(jumpRepo, new(mockUserRepo))
	req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	for _, key := range []string{"num-records", "num-days", "highest-jump", "last-jump", "improvement"} {
		assert.Contains(t, resp, key)
	}
	assert.Equal(t, "2", string(resp["num-records"]))
}

func TestPlotReturnsPNG(t *testing.T) {
	jumpRepo := new(mockJumpRepo)
	records := []model.JumpRecord{
		{ID: 1, CreatedAt: time.Now().UTC().AddDate(0, -1, 0), Variant: model.VariantMax, Height: 0.9, Weight: 80},
		{ID: 2, CreatedAt: time.Now().UTC().AddDate(0, 0, -7), Variant: model.VariantMax, Height: 1.0, Weight: 80},
	}
	jumpRepo.On("ListByUser", mock.Anything, "user-1", model.VariantMax).Return(records, nil)

	r := jumpRouter(jumpRepo, new(mockUserRepo))
	req := httptest.NewRequest(http.MethodGet, "/api/plot", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, w.Body.Bytes()[:4])
}
