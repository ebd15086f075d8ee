// internal/vector/pinecone.go
package vector

import (
	"context"

	"esthelogy_admin_console/internal/middleware"
	"esthelogy_admin_console/internal/model"

	"github.com/pinecone-io/go-pinecone/v2/pinecone"
	"google.golang.org/protobuf/types/known/structpb"
)

// メタデータのキー。元システムが {"question": <text>} で保存しているものと揃える。
const metadataQuestionKey = "question"

// PineconeIndex は Pinecone のマネージドインデックスを使う Index 実装です。
type PineconeIndex struct {
	conn *pinecone.IndexConnection
}

// NewPineconeIndex はAPIキーとインデックス名から接続を確立します。
func NewPineconeIndex(ctx context.Context, apiKey, indexName, namespace string) (*PineconeIndex, error) {
	client, err := pinecone.NewClient(pinecone.NewClientParams{ApiKey: apiKey})
	if err != nil {
		return nil, err
	}

	idx, err := client.DescribeIndex(ctx, indexName)
	if err != nil {
		return nil, err
	}

	conn, err := client.Index(pinecone.NewIndexConnParams{
		Host:      idx.Host,
		Namespace: namespace,
	})
	if err != nil {
		return nil, err
	}

	return &PineconeIndex{conn: conn}, nil
}

func (p *PineconeIndex) Upsert(ctx context.Context, id string, values []float32, question string) error {
	logger := middleware.GetLogger(ctx)

	metadata, err := structpb.NewStruct(map[string]interface{}{
		metadataQuestionKey: question,
	})
	if err != nil {
		logger.Error("Failed to build vector metadata", "error", err)
		return model.ErrInternalServer
	}

	_, err = p.conn.UpsertVectors(ctx, []*pinecone.Vector{
		{
			Id:       id,
			Values:   values,
			Metadata: metadata,
		},
	})
	if err != nil {
		logger.Error("Pinecone upsert failed", "error", err, "id", id)
		return model.NewAppError("VECTOR_UPSERT_FAILED", "ベクトルインデックスへの登録に失敗しました。", "", model.ErrUpstream)
	}
	return nil
}

func (p *PineconeIndex) QueryNearest(ctx context.Context, values []float32) (*Match, error) {
	logger := middleware.GetLogger(ctx)

	result, err := p.conn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          values,
		TopK:            1,
		IncludeMetadata: true,
	})
	if err != nil {
		logger.Error("Pinecone query failed", "error", err)
		return nil, model.NewAppError("VECTOR_QUERY_FAILED", "ベクトルインデックスの検索に失敗しました。", "", model.ErrUpstream)
	}

	if len(result.Matches) == 0 || result.Matches[0].Vector == nil {
		return nil, nil
	}

	best := result.Matches[0]
	match := &Match{
		ID:    best.Vector.Id,
		Score: float64(best.Score),
	}
	if best.Vector.Metadata != nil {
		if field, ok := best.Vector.Metadata.Fields[metadataQuestionKey]; ok {
			match.Question = field.GetStringValue()
		}
	}
	// メタデータが欠けていてもIDが質問文なのでフォールバックできる
	if match.Question == "" {
		match.Question = best.Vector.Id
	}
	return match, nil
}
