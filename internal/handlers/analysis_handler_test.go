// internal/handlers/analysis_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"esthelogy_admin_console/internal/handlers"
	"esthelogy_admin_console/internal/model"
	"esthelogy_admin_console/internal/service/mocks"
)

func setupAnalysisRouter(mockService *mocks.AnalysisService, session *model.AdminSession) *chi.Mux {
	analysisHandler := handlers.NewAnalysisHandler(mockService, nil)
	router := chi.NewRouter()
	router.Use(sessionInjector(session))
	router.Post("/api/v1/analysis/skin", analysisHandler.AnalyzeSkin)
	return router
}

func TestAnalysisHandler_AnalyzeSkin(t *testing.T) {
	session := newTestSession()

	t.Run("正常系: 解析結果をそのまま返す", func(t *testing.T) {
		reqBody := model.SkinAnalysisRequest{ImageURL: "https://example.com/face.jpg"}
		expected := &model.SkinAnalysisResult{
			AnalysisID:      "analysis-1",
			SkinType:        "dry",
			Scores:          map[string]float64{"dryness": 0.72},
			Recommendations: []string{"保湿重視のケア"},
		}
		mockService := new(mocks.AnalysisService)
		mockService.On("AnalyzeSkin", mock.Anything, session, &reqBody).Return(expected, nil).Once()
		router := setupAnalysisRouter(mockService, session)

		req := createRequest(t, "POST", "/api/v1/analysis/skin", reqBody)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var result model.SkinAnalysisResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Equal(t, "analysis-1", result.AnalysisID)
		assert.Equal(t, "dry", result.SkinType)
		mockService.AssertExpectations(t)
	})

	t.Run("異常系: image_urlがURL形式でない", func(t *testing.T) {
		mockService := new(mocks.AnalysisService)
		router := setupAnalysisRouter(mockService, session)

		req := createRequest(t, "POST", "/api/v1/analysis/skin", model.SkinAnalysisRequest{ImageURL: "not-a-url"})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "AnalyzeSkin", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 画像未指定はサービス側の検証で400", func(t *testing.T) {
		reqBody := model.SkinAnalysisRequest{}
		mockService := new(mocks.AnalysisService)
		appErr := model.NewAppError("IMAGE_REQUIRED", "解析する画像を指定してください。", "image_url", model.ErrInvalidInput)
		mockService.On("AnalyzeSkin", mock.Anything, session, &reqBody).Return(nil, appErr).Once()
		router := setupAnalysisRouter(mockService, session)

		req := createRequest(t, "POST", "/api/v1/analysis/skin", reqBody)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		errResp := decodeErrorResponse(t, rr.Body)
		assert.Equal(t, "IMAGE_REQUIRED", errResp.Error.Code)
	})

	t.Run("異常系: リモートAI障害は502", func(t *testing.T) {
		reqBody := model.SkinAnalysisRequest{ImageURL: "https://example.com/face.jpg"}
		mockService := new(mocks.AnalysisService)
		mockService.On("AnalyzeSkin", mock.Anything, session, &reqBody).Return(nil, model.ErrUpstream).Once()
		router := setupAnalysisRouter(mockService, session)

		req := createRequest(t, "POST", "/api/v1/analysis/skin", reqBody)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})
}
