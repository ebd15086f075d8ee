//go:generate mockery --name Index --output ./mocks --outpkg mocks --case=underscore
// internal/vector/index.go
package vector

import "context"

// Match はベクトルインデックスの最近傍検索の結果1件です。
// Question はベクトルのメタデータに保存された元の質問文です。
type Match struct {
	ID       string
	Score    float64
	Question string
}

// Index は質問文のベクトルインデックスです。
// 近似最近傍検索と登録のみを扱い、類似判定の閾値はサービス層が持ちます。
type Index interface {
	// Upsert は質問のベクトルを登録します。id には質問文そのものを使います
	// (元システムの仕様。同一テキストの再登録は上書きになる)。
	Upsert(ctx context.Context, id string, values []float32, question string) error

	// QueryNearest は最も近い1件を返します。インデックスが空なら nil を返します。
	QueryNearest(ctx context.Context, values []float32) (*Match, error)
}
