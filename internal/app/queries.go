package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"eduquote/internal/domain"
)

// QueryService serves catalog reads. Fetches are cached per portal and never
// fail: a broken store degrades to the factory dataset so the UI always has
// something to render. Callers must not infer persisted state from a
// non-empty result.
type QueryService struct {
	repo     domain.ProgramRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.ProgramRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

// Programs returns the portal's persisted catalog in insertion order. On a
// transport failure it logs and returns the portal's factory slice instead.
// An empty store yields an empty (non-nil) slice; population is
// RestoreMissing's job, not this read path's.
func (s *QueryService) Programs(ctx context.Context, portal domain.Portal) []domain.Program {
	key := programsKey(portal)
	var cached []domain.Program
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached
		}
	}

	list, err := s.repo.ListByPortal(ctx, portal)
	if err != nil {
		log.Warn().Err(err).
			Str("portal", portal.Key()).
			Msg("program fetch failed, serving factory fallback")
		return domain.FactoryPrograms(portal)
	}
	if list == nil {
		list = []domain.Program{}
	}

	if s.cache != nil {
		// copy so later cache hits can't alias the repo's backing array
		cp := make([]domain.Program, len(list))
		for i, p := range list {
			cp[i] = p.Clone()
		}
		_ = s.cache.Set(ctx, key, cp, int(s.cacheTTL.Seconds()))
	}
	return list
}

// Program returns one record by id.
func (s *QueryService) Program(ctx context.Context, id string) (domain.Program, error) {
	return s.repo.Get(ctx, id)
}
