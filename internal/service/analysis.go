package service

import (
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"gopkg.in/guregu/null.v3"

	"mingpan.dev/backend/internal/model"
	"mingpan.dev/backend/internal/model/cache"
	"mingpan.dev/backend/internal/model/types"
	"mingpan.dev/backend/internal/pkg/fingerprint"
	"mingpan.dev/backend/internal/pkg/observability"
	"mingpan.dev/backend/internal/repo"
)

// AnalysisCacheExpire bounds staleness of cached results; the computation is
// deterministic so the expiry only limits redis footprint.
const AnalysisCacheExpire = time.Hour * 24

type Analysis struct {
	ChartService       *Chart
	StrengthService    *Strength
	UseGodService      *UseGod
	NarrativeService   *Narrative
	AnalysisRecordRepo *repo.AnalysisRecord
}

func NewAnalysis(chart *Chart, strength *Strength, useGod *UseGod, narrative *Narrative, recordRepo *repo.AnalysisRecord) *Analysis {
	return &Analysis{
		ChartService:       chart,
		StrengthService:    strength,
		UseGodService:      useGod,
		NarrativeService:   narrative,
		AnalysisRecordRepo: recordRepo,
	}
}

// Analyze runs the full pipeline for the given birth data. Results are keyed
// by the content fingerprint: cache first, computed at most once per missing
// key, then persisted for retrieval by fingerprint.
func (s *Analysis) Analyze(ctx context.Context, birth types.BirthData) (*model.BaziAnalysis, error) {
	fp := fingerprint.Of(birth)

	var analysis model.BaziAnalysis
	calculated, err := cache.AnalysisByFingerprint.MutexGetSet(fp, &analysis, func() (*model.BaziAnalysis, error) {
		return s.compute(fp, birth)
	}, AnalysisCacheExpire)
	if err != nil {
		return nil, err
	}
	observability.AnalysisCacheCalculated.
		WithLabelValues(strconv.FormatBool(calculated)).
		Inc()

	if calculated {
		if err := s.persist(ctx, birth, &analysis); err != nil {
			// the analysis itself is already computed and cached; persistence
			// failures only lose retrievability by fingerprint
			log.Error().Err(err).Str("fingerprint", fp).Msg("failed to persist analysis record")
		}
	}

	return &analysis, nil
}

// GetByFingerprint looks a previously computed analysis up, falling back from
// cache to the persisted record.
func (s *Analysis) GetByFingerprint(ctx context.Context, fp string) (*model.BaziAnalysis, error) {
	var analysis model.BaziAnalysis
	if err := cache.AnalysisByFingerprint.Get(fp, &analysis); err == nil {
		return &analysis, nil
	}

	record, err := s.AnalysisRecordRepo.GetByFingerprint(ctx, fp)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(record.Result, &analysis); err != nil {
		return nil, err
	}

	_ = cache.AnalysisByFingerprint.Set(fp, analysis, AnalysisCacheExpire)

	return &analysis, nil
}

func (s *Analysis) compute(fp string, birth types.BirthData) (*model.BaziAnalysis, error) {
	defer func(start time.Time) {
		observability.AnalysisComputeDuration.
			WithLabelValues().
			Observe(time.Since(start).Seconds())
	}(time.Now())

	chart, err := s.ChartService.Compute(birth)
	if err != nil {
		return nil, err
	}

	strength := s.StrengthService.Score(chart.DayMasterElement, chart.Month.Branch, chart)
	useGod := s.UseGodService.Infer(chart.DayMasterElement, strength.Level)
	narrative := s.NarrativeService.Render(chart, strength, useGod)

	return &model.BaziAnalysis{
		Fingerprint: fp,
		Chart:       *chart,
		Strength:    *strength,
		UseGod:      *useGod,
		Narrative:   *narrative,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

func (s *Analysis) persist(ctx context.Context, birth types.BirthData, analysis *model.BaziAnalysis) error {
	result, err := json.Marshal(analysis)
	if err != nil {
		return err
	}

	return s.AnalysisRecordRepo.Save(ctx, &model.AnalysisRecord{
		Fingerprint: analysis.Fingerprint,
		Name:        birth.Name,
		Gender:      null.NewString(birth.Gender, birth.Gender != ""),
		BirthDate:   birth.Date,
		BirthTime:   birth.Time,
		Result:      result,
	})
}
