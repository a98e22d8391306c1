package repo

import (
	"context"

	"github.com/uptrace/bun"

	"mingpan.dev/backend/internal/model"
	"mingpan.dev/backend/internal/repo/selector"
)

type AnalysisRecord struct {
	DB *bun.DB

	sel selector.S[model.AnalysisRecord]
}

func NewAnalysisRecord(db *bun.DB) *AnalysisRecord {
	return &AnalysisRecord{
		DB:  db,
		sel: selector.New[model.AnalysisRecord](db),
	}
}

func (r *AnalysisRecord) GetByFingerprint(ctx context.Context, fingerprint string) (*model.AnalysisRecord, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("fingerprint = ?", fingerprint)
	})
}

func (r *AnalysisRecord) Save(ctx context.Context, record *model.AnalysisRecord) error {
	_, err := r.DB.NewInsert().
		Model(record).
		On("CONFLICT (fingerprint) DO UPDATE").
		Set("result = EXCLUDED.result").
		Exec(ctx)
	return err
}

func (r *AnalysisRecord) ListRecent(ctx context.Context, limit int) ([]*model.AnalysisRecord, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("created_at DESC").Limit(limit)
	})
}
