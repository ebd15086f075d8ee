//go:generate mockery --name AnalysisService --output ./mocks --outpkg mocks --case=underscore
// internal/service/analysis_service.go
package service

import (
	"context"

	"esthelogy_admin_console/internal/esthelogy"
	"esthelogy_admin_console/internal/middleware"
	"esthelogy_admin_console/internal/model"
)

// AnalysisService は肌解析AIエンドポイントへのパススルーです。
// 解析・推薦のロジックはすべてリモート側にあります。
type AnalysisService interface {
	AnalyzeSkin(ctx context.Context, session *model.AdminSession, req *model.SkinAnalysisRequest) (*model.SkinAnalysisResult, error)
}

type analysisService struct {
	api   esthelogy.Client
	audit AuditService
}

func NewAnalysisService(api esthelogy.Client, audit AuditService) AnalysisService {
	return &analysisService{
		api:   api,
		audit: audit,
	}
}

func (s *analysisService) AnalyzeSkin(ctx context.Context, session *model.AdminSession, req *model.SkinAnalysisRequest) (*model.SkinAnalysisResult, error) {
	logger := middleware.GetLogger(ctx)

	// 画像はURLかBase64のどちらか一方が必要
	if req.ImageURL == "" && req.ImageBase64 == "" {
		return nil, model.NewAppError("IMAGE_REQUIRED", "解析する画像を指定してください。", "image_url", model.ErrInvalidInput)
	}
	if req.ImageURL != "" && req.ImageBase64 != "" {
		return nil, model.NewAppError("IMAGE_AMBIGUOUS", "画像はURLかBase64のどちらか一方で指定してください。", "image_url", model.ErrInvalidInput)
	}

	result, err := s.api.AnalyzeSkin(ctx, session.RemoteToken, req)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, session.UserID, model.AuditActionAnalyzeSkin, result.AnalysisID, "")
	logger.Info("Skin analysis completed", "analysis_id", result.AnalysisID)
	return result, nil
}
