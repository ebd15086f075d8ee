// internal/model/analysis.go
package model

// SkinAnalysisRequest は肌解析AIエンドポイントへのリクエストです。
// 画像はURL指定かBase64のどちらか一方を指定します。
type SkinAnalysisRequest struct {
	ImageURL    string `json:"image_url,omitempty" validate:"omitempty,url"`
	ImageBase64 string `json:"image_base64,omitempty" validate:"omitempty,base64"`
	UserID      string `json:"user_id,omitempty"`
}

// SkinAnalysisResult はリモートAIの解析結果をそのまま受け渡すDTOです。
// スコアの算出ロジックはリモート側にあり、ここでは解釈しません。
type SkinAnalysisResult struct {
	AnalysisID      string             `json:"analysis_id"`
	SkinType        string             `json:"skin_type,omitempty"`
	Scores          map[string]float64 `json:"scores,omitempty"`
	Recommendations []string           `json:"recommendations,omitempty"`
	Raw             map[string]any     `json:"raw,omitempty"`
}
