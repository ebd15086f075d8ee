// internal/handlers/esthetician_handler_test.go
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

func setupEstheticianRouter(mockService *mocks.EstheticianService, session *model.AdminSession) *chi.Mux {
	estheticianHandler := handlers.NewEstheticianHandler(mockService, nil)
	router := chi.NewRouter()
	router.Use(sessionInjector(session))
	router.Route("/api/v1/estheticians", func(r chi.Router) {
		r.Get("/", estheticianHandler.ListEstheticians)
		r.Post("/{esthetician_id}/approve", estheticianHandler.Approve)
		r.Post("/{esthetician_id}/reject", estheticianHandler.Reject)
	})
	return router
}

func TestEstheticianHandler_ListEstheticians(t *testing.T) {
	session := newTestSession()

	t.Run("正常系: statusクエリで絞り込み", func(t *testing.T) {
		expected := []*model.Esthetician{
			{EstheticianID: "esth-1", Name: "山田花子", Email: "hanako@example.com", Status: "pending"},
		}
		mockService := new(mocks.EstheticianService)
		mockService.On("ListEstheticians", mock.Anything, session, "pending").Return(expected, nil).Once()
		router := setupEstheticianRouter(mockService, session)

		req := createRequest(t, "GET", "/api/v1/estheticians?status=pending", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var estheticians []*model.Esthetician
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &estheticians))
		assert.Len(t, estheticians, 1)
		assert.Equal(t, "esth-1", estheticians[0].EstheticianID)
		mockService.AssertExpectations(t)
	})

	t.Run("正常系: サービスがnilを返しても空配列で返す", func(t *testing.T) {
		mockService := new(mocks.EstheticianService)
		mockService.On("ListEstheticians", mock.Anything, session, "").Return(nil, nil).Once()
		router := setupEstheticianRouter(mockService, session)

		req := createRequest(t, "GET", "/api/v1/estheticians", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("異常系: 未知のstatusは400", func(t *testing.T) {
		mockService := new(mocks.EstheticianService)
		mockService.On("ListEstheticians", mock.Anything, session, "unknown").
			Return(nil, model.NewAppError("INVALID_STATUS", "statusの指定が不正です。", "status", model.ErrInvalidInput)).Once()
		router := setupEstheticianRouter(mockService, session)

		req := createRequest(t, "GET", "/api/v1/estheticians?status=unknown", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestEstheticianHandler_Approve(t *testing.T) {
	session := newTestSession()

	tests := []struct {
		name           string
		session        *model.AdminSession
		setupMock      func(m *mocks.EstheticianService)
		expectedStatus int
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name:    "正常系: 承認成功で通知済み",
			session: session,
			setupMock: func(m *mocks.EstheticianService) {
				resp := &model.EstheticianDecisionResponse{
					Esthetician: &model.Esthetician{EstheticianID: "esth-1", Status: "approved"},
					Notified:    true,
				}
				m.On("Approve", mock.Anything, session, "esth-1").Return(resp, nil).Once()
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp model.EstheticianDecisionResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.True(t, resp.Notified)
				assert.Equal(t, "approved", resp.Esthetician.Status)
			},
		},
		{
			name:    "正常系: メール送信失敗でもnotified=falseで200",
			session: session,
			setupMock: func(m *mocks.EstheticianService) {
				resp := &model.EstheticianDecisionResponse{
					Esthetician: &model.Esthetician{EstheticianID: "esth-1", Status: "approved"},
					Notified:    false,
				}
				m.On("Approve", mock.Anything, session, "esth-1").Return(resp, nil).Once()
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp model.EstheticianDecisionResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.False(t, resp.Notified)
			},
		},
		{
			name:    "異常系: 存在しないIDは404",
			session: session,
			setupMock: func(m *mocks.EstheticianService) {
				m.On("Approve", mock.Anything, session, "esth-1").Return(nil, model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "異常系: セッションなし",
			session:        nil,
			setupMock:      func(m *mocks.EstheticianService) { /* サービスは呼ばれない */ },
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := new(mocks.EstheticianService)
			tc.setupMock(mockService)
			router := setupEstheticianRouter(mockService, tc.session)

			req := createRequest(t, "POST", "/api/v1/estheticians/esth-1/approve", nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.Bytes())
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestEstheticianHandler_Reject(t *testing.T) {
	session := newTestSession()

	t.Run("正常系: 否認成功", func(t *testing.T) {
		reason := "免許番号が確認できませんでした。"
		resp := &model.EstheticianDecisionResponse{
			Esthetician: &model.Esthetician{EstheticianID: "esth-1", Status: "rejected", RejectReason: reason},
			Notified:    true,
		}
		mockService := new(mocks.EstheticianService)
		mockService.On("Reject", mock.Anything, session, "esth-1", reason).Return(resp, nil).Once()
		router := setupEstheticianRouter(mockService, session)

		req := createRequest(t, "POST", "/api/v1/estheticians/esth-1/reject", model.RejectEstheticianRequest{Reason: reason})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var decoded model.EstheticianDecisionResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &decoded))
		assert.Equal(t, "rejected", decoded.Esthetician.Status)
		mockService.AssertExpectations(t)
	})

	t.Run("異常系: 理由なしは400", func(t *testing.T) {
		mockService := new(mocks.EstheticianService)
		router := setupEstheticianRouter(mockService, session)

		req := createRequest(t, "POST", "/api/v1/estheticians/esth-1/reject", model.RejectEstheticianRequest{})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "Reject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
