package service

import (
	"context"
	"time"

	"github.com/kapu/brandlens-go/internal/constants"
	"github.com/kapu/brandlens-go/internal/domain"
	"github.com/kapu/brandlens-go/pkg/errors"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

const ReportKeyPrefix = "report:"

// ReportStore is the storage surface the report assembly needs.
type ReportStore interface {
	GetBrand(ctx context.Context, brandID string) (*domain.Brand, error)
	GetPersonaVisibility(ctx context.Context, brandID string) ([]domain.PersonaVisibility, error)
	GetTopicVisibility(ctx context.Context, brandID string) ([]domain.TopicVisibility, error)
	GetModelVisibility(ctx context.Context, brandID string) ([]domain.ModelVisibility, error)
	GetTopSources(ctx context.Context, brandID string) ([]domain.TopSource, error)
	GetSourceTypes(ctx context.Context, brandID string) ([]domain.SourceType, error)
	GetMatrixCells(ctx context.Context, brandID string) ([]domain.MatrixCell, error)
}

// ReportCache is the cache surface the report assembly needs.
type ReportCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// ReportService assembles a brand's visibility report: cache first, then the
// report sections from storage, fetched concurrently.
type ReportService struct {
	store  ReportStore
	cache  ReportCache
	logger *zap.Logger
	ttl    time.Duration
}

func NewReportService(store ReportStore, cache ReportCache, logger *zap.Logger, ttl time.Duration) *ReportService {
	if ttl <= 0 {
		ttl = constants.CacheTTL.Report
	}
	return &ReportService{
		store:  store,
		cache:  cache,
		logger: logger,
		ttl:    ttl,
	}
}

// GetReport returns the assembled report for a brand. Unknown brands return
// nil, nil.
func (s *ReportService) GetReport(ctx context.Context, brandID string) (*domain.VisibilityReport, error) {
	key := ReportKeyPrefix + brandID

	if s.cache != nil {
		var cached domain.VisibilityReport
		hit, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			s.logger.Warn("Report cache read failed", zap.String("key", key), zap.Error(err))
		} else if hit {
			s.logger.Debug("Report cache hit", zap.String("brand_id", brandID))
			return &cached, nil
		}
	}

	brand, err := s.store.GetBrand(ctx, brandID)
	if err != nil {
		return nil, errors.NewServiceError("failed to load brand", "report", "get_brand", err)
	}
	if brand == nil {
		return nil, nil
	}

	report := &domain.VisibilityReport{
		BrandID:   brand.ID,
		BrandName: brand.Name,
	}

	p := pool.New().WithMaxGoroutines(constants.ReportConfig.FetchConcurrency)
	sectionErrs := make([]error, 6)

	p.Go(func() {
		report.Personas, sectionErrs[0] = s.store.GetPersonaVisibility(ctx, brandID)
	})
	p.Go(func() {
		report.Topics, sectionErrs[1] = s.store.GetTopicVisibility(ctx, brandID)
	})
	p.Go(func() {
		report.Models, sectionErrs[2] = s.store.GetModelVisibility(ctx, brandID)
	})
	p.Go(func() {
		report.TopSources, sectionErrs[3] = s.store.GetTopSources(ctx, brandID)
	})
	p.Go(func() {
		report.SourceTypes, sectionErrs[4] = s.store.GetSourceTypes(ctx, brandID)
	})
	p.Go(func() {
		report.MatrixCells, sectionErrs[5] = s.store.GetMatrixCells(ctx, brandID)
	})
	p.Wait()

	for _, sectionErr := range sectionErrs {
		if sectionErr != nil {
			return nil, errors.NewServiceError("failed to load report section", "report", "get_report", sectionErr)
		}
	}

	report.MatrixPersonas = make([]string, len(report.Personas))
	for i, persona := range report.Personas {
		report.MatrixPersonas[i] = persona.Name
	}
	report.MatrixTopics = make([]string, len(report.Topics))
	for i, topic := range report.Topics {
		report.MatrixTopics[i] = topic.Name
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, report, s.ttl); err != nil {
			s.logger.Warn("Report cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return report, nil
}

// InvalidateReport drops the cached report so the next read rebuilds it.
// Called after brand mutations.
func (s *ReportService) InvalidateReport(ctx context.Context, brandID string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Del(ctx, ReportKeyPrefix+brandID)
}
