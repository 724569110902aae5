package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mindcare/internal/middleware"
	"mindcare/internal/model"
	"mindcare/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newHandlerDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&model.Therapist{}, &model.Booking{}, &model.SymptomCheck{},
	))
	return db
}

func symptomRouter(t *testing.T, upstreamStatus int, reply string) (*gin.Engine, *gorm.DB) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if upstreamStatus != http.StatusOK {
			w.WriteHeader(upstreamStatus)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"content": reply}}},
		})
	}))
	t.Cleanup(srv.Close)

	db := newHandlerDB(t)
	h := NewSymptomHandler(service.NewAdviceService(db, srv.URL, "test-key", "gpt-4o-mini"))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/symptom-check", middleware.JWTAuth(), h.Check)
	return r, db
}

func checkSymptoms(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	token, err := middleware.SignToken("user-1", "Pat", "pat@example.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/symptom-check", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	return w
}

func TestSymptomEndpointSuccess(t *testing.T) {
	r, db := symptomRouter(t, http.StatusOK, "Be kind to yourself today.")

	w := checkSymptoms(t, r, `{"symptoms": "feeling low"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"response": "Be kind to yourself today."}`, w.Body.String())

	var count int64
	db.Model(&model.SymptomCheck{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSymptomEndpointRateLimitCopy(t *testing.T) {
	r, db := symptomRouter(t, http.StatusTooManyRequests, "")

	w := checkSymptoms(t, r, `{"symptoms": "feeling low"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests. Please try again in a moment.")

	var count int64
	db.Model(&model.SymptomCheck{}).Count(&count)
	assert.Zero(t, count)
}

func TestSymptomEndpointUnavailableCopy(t *testing.T) {
	r, _ := symptomRouter(t, http.StatusPaymentRequired, "")

	w := checkSymptoms(t, r, `{"symptoms": "feeling low"}`)
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Contains(t, w.Body.String(), "AI service is temporarily unavailable.")
}

func TestSymptomEndpointEmptyInput(t *testing.T) {
	r, _ := symptomRouter(t, http.StatusOK, "unused")

	w := checkSymptoms(t, r, `{"symptoms": "  "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "please describe your symptoms")
}
