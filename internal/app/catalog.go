package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"eduquote/internal/domain"
)

// oversizeWarnBytes is the soft payload threshold above which a save is
// likely to be rejected by the store. Warn, don't block.
const oversizeWarnBytes = 5 << 20

// CatalogService owns every write path of the per-portal catalog plus the
// three seeding primitives. They stay separate operations on purpose: cold
// start, partial drift and full corruption are distinct recovery scenarios
// and conflating them invites accidental data loss.
type CatalogService struct {
	repo  domain.ProgramRepository
	cache domain.Cache
}

func NewCatalogService(r domain.ProgramRepository, cache domain.Cache) *CatalogService {
	return &CatalogService{repo: r, cache: cache}
}

func programsKey(portal domain.Portal) string {
	return fmt.Sprintf("programs:%s", portal.Key())
}

// Save updates the record when its id denotes a persisted identity, inserts
// otherwise, and returns the authoritative stored record.
func (s *CatalogService) Save(ctx context.Context, p domain.Program, portal domain.Portal) (domain.Program, error) {
	if len(p.TimetableImages) > domain.MaxTimetableImages {
		p.TimetableImages = p.TimetableImages[:domain.MaxTimetableImages]
	}

	if b, err := json.Marshal(MapToRow(p, portal)); err == nil && len(b) > oversizeWarnBytes {
		log.Warn().
			Str("program", p.Name).
			Float64("size_mb", float64(len(b))/(1<<20)).
			Msg("payload exceeds soft save threshold; save may fail")
	}

	var (
		saved domain.Program
		err   error
	)
	if p.Persisted() {
		saved, err = s.repo.Update(ctx, p, portal)
	} else {
		saved, err = s.repo.Insert(ctx, p, portal)
	}
	if err != nil {
		return domain.Program{}, err
	}
	s.invalidate(ctx, portal)
	return saved, nil
}

// Delete removes a record by id. It never fails loudly: errors are logged
// and reported as false.
func (s *CatalogService) Delete(ctx context.Context, id string) bool {
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("delete program failed")
		return false
	}
	// The id alone doesn't tell us the portal; drop every portal's cache.
	for _, p := range domain.Portals() {
		s.invalidate(ctx, p)
	}
	return true
}

// Seed unconditionally inserts every factory entry for the portal. Calling
// it on a non-empty portal duplicates names by design; gate it at the call
// site. Returns how many records were inserted.
func (s *CatalogService) Seed(ctx context.Context, portal domain.Portal) (int, error) {
	inserted := 0
	for _, p := range domain.FactoryPrograms(portal) {
		p.ID = "" // store assigns the durable identity
		if _, err := s.repo.Insert(ctx, p, portal); err != nil {
			return inserted, fmt.Errorf("seed %s: %w", portal.Key(), err)
		}
		inserted++
	}
	s.invalidate(ctx, portal)
	return inserted, nil
}

// RestoreMissing diffs persisted names against the factory set and inserts a
// fresh copy of every absent entry. Idempotent: with no drift it writes
// nothing. The read completes before any insert begins; the insert loop never
// re-reads. A renamed record is treated as missing and re-seeded alongside
// the renamed survivor (accepted limitation of name-based diffing).
func (s *CatalogService) RestoreMissing(ctx context.Context, portal domain.Portal) (bool, error) {
	names, err := s.repo.ListNames(ctx, portal)
	if err != nil {
		return false, fmt.Errorf("restore %s: list names: %w", portal.Key(), err)
	}
	existing := make(map[string]struct{}, len(names))
	for _, n := range names {
		existing[n] = struct{}{}
	}

	var missing []domain.Program
	for _, p := range domain.FactoryPrograms(portal) {
		if _, ok := existing[p.Name]; !ok {
			missing = append(missing, p)
		}
	}
	if len(missing) == 0 {
		return false, nil
	}

	log.Info().
		Int("count", len(missing)).
		Str("portal", portal.Key()).
		Msg("restoring missing programs")
	for _, p := range missing {
		p.ID = ""
		if _, err := s.repo.Insert(ctx, p, portal); err != nil {
			return true, fmt.Errorf("restore %s: insert %q: %w", portal.Key(), p.Name, err)
		}
	}
	s.invalidate(ctx, portal)
	return true, nil
}

// ResetAndSeed deletes every record for the portal, then seeds it from
// scratch. Destructive and irreversible; the surface requires explicit
// confirmation before calling it.
func (s *CatalogService) ResetAndSeed(ctx context.Context, portal domain.Portal) error {
	n, err := s.repo.DeleteByPortal(ctx, portal)
	if err != nil {
		return fmt.Errorf("reset %s: %w", portal.Key(), err)
	}
	log.Info().Int64("deleted", n).Str("portal", portal.Key()).Msg("portal wiped, reseeding")
	if _, err := s.Seed(ctx, portal); err != nil {
		return err
	}
	return nil
}

func (s *CatalogService) invalidate(ctx context.Context, portal domain.Portal) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, programsKey(portal)); err != nil {
		log.Warn().Err(err).Str("portal", portal.Key()).Msg("cache invalidation failed")
	}
}

// SettingsService loads and saves the deployment-wide branding defaults.
type SettingsService struct {
	repo domain.SettingsRepository
}

func NewSettingsService(r domain.SettingsRepository) *SettingsService {
	return &SettingsService{repo: r}
}

func (s *SettingsService) Load(ctx context.Context) (domain.Settings, error) {
	return s.repo.GetSettings(ctx)
}

func (s *SettingsService) Save(ctx context.Context, st domain.Settings) error {
	return s.repo.SaveSettings(ctx, st)
}
