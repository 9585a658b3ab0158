package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"eduquote/internal/domain"
)

// User-facing degradation strings (Turkish product copy, matching the rest
// of the catalog content).
const draftUnavailableMsg = "Yapay zeka servisine şu an ulaşılamıyor. Lütfen daha sonra tekrar deneyiniz."

var fallbackHighlights = []string{
	"Harika Lokasyon",
	"Yoğun İngilizce Eğitimi",
	"Kültürel Aktiviteler",
}

// DraftService fronts the AI drafting collaborator. It never propagates an
// error: an unreachable service degrades to a visible placeholder string.
type DraftService struct {
	drafter domain.Drafter
}

func NewDraftService(d domain.Drafter) *DraftService {
	return &DraftService{drafter: d}
}

// Email drafts the outreach email for a program/quote pair.
func (s *DraftService) Email(ctx context.Context, p domain.Program, q domain.QuoteDetails) string {
	if s.drafter == nil {
		return draftUnavailableMsg
	}
	out, err := s.drafter.DraftEmail(ctx, p, q)
	if err != nil || strings.TrimSpace(out) == "" {
		log.Error().Err(err).Str("program", p.Name).Msg("email draft failed")
		return draftUnavailableMsg
	}
	return out
}

// Highlights returns three short selling points for a program, or the static
// fallback triple when the collaborator is unavailable.
func (s *DraftService) Highlights(ctx context.Context, p domain.Program) []string {
	if s.drafter == nil {
		return append([]string(nil), fallbackHighlights...)
	}
	out, err := s.drafter.Highlights(ctx, p)
	if err != nil || len(out) == 0 {
		log.Warn().Err(err).Str("program", p.Name).Msg("highlights draft failed")
		return append([]string(nil), fallbackHighlights...)
	}
	return out
}
