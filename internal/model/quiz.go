// internal/model/quiz.go
package model

// Quiz はEsthelogy APIが管理するクイズ（問診票）です。
// 永続化はすべてリモート側なので、ここでは受け渡し用のDTOのみを定義します。
type Quiz struct {
	QuizID    string      `json:"quiz_id"`
	Title     string      `json:"title"`
	Section   string      `json:"section"`
	Questions []*Question `json:"questions"` // 表示順で並ぶ
	CreatedAt string      `json:"created_at,omitempty"`
	UpdatedAt string      `json:"updated_at,omitempty"`
}

// Question はクイズ内の1問です。選択肢は表示順の文字列リストです。
type Question struct {
	QuestionID string   `json:"question_id"`
	Text       string   `json:"text"`
	Options    []string `json:"options"`
}

// クイズ作成リクエストDTO
type CreateQuizRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=200"`
	Section string `json:"section" validate:"required,min=1,max=100"`
}

// クイズ更新リクエストDTO
type UpdateQuizRequest struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Section *string `json:"section,omitempty" validate:"omitempty,min=1,max=100"`
}

// 質問追加リクエストDTO
type AddQuestionRequest struct {
	Text    string   `json:"text" validate:"required,min=1,max=1000"`
	Options []string `json:"options" validate:"omitempty,dive,min=1"`
}

// 類似チェックリクエストDTO
type SimilarityCheckRequest struct {
	Text string `json:"text" validate:"required,min=1,max=1000"`
}

// SimilarityResult は類似チェックの結果です。
// Duplicate が true のとき、MatchedQuestion と Score に最近傍の内容が入ります。
type SimilarityResult struct {
	Duplicate       bool    `json:"duplicate"`
	MatchedQuestion string  `json:"matched_question,omitempty"`
	Score           float64 `json:"score,omitempty"`
}

// --- クイズ受験フロー (管理画面からの動作確認用パススルー) ---

// TakeSession はリモートAPIが払い出す受験セッションです。
type TakeSession struct {
	TakeID   string    `json:"take_id"`
	QuizID   string    `json:"quiz_id"`
	Question *Question `json:"question,omitempty"` // 最初の質問
}

type SubmitAnswerRequest struct {
	QuestionID string `json:"question_id" validate:"required"`
	Option     int    `json:"option" validate:"gte=0"`
}

// AnswerResult は回答送信後の状態です。次の質問が無ければ受験完了可能です。
type AnswerResult struct {
	Accepted     bool      `json:"accepted"`
	NextQuestion *Question `json:"next_question,omitempty"`
}

type TakeResult struct {
	TakeID    string         `json:"take_id"`
	QuizID    string         `json:"quiz_id"`
	Completed bool           `json:"completed"`
	Scores    map[string]any `json:"scores,omitempty"` // リモート算出のスコア類はそのまま返す
}
