package domain

import "context"

type ProgramRepository interface {
	// Write paths
	Insert(ctx context.Context, p Program, portal Portal) (Program, error)
	Update(ctx context.Context, p Program, portal Portal) (Program, error)
	Delete(ctx context.Context, id string) error
	DeleteByPortal(ctx context.Context, portal Portal) (int64, error)

	// Read paths
	ListByPortal(ctx context.Context, portal Portal) ([]Program, error)
	ListNames(ctx context.Context, portal Portal) ([]string, error)
	Get(ctx context.Context, id string) (Program, error)
}

type SettingsRepository interface {
	GetSettings(ctx context.Context) (Settings, error)
	SaveSettings(ctx context.Context, s Settings) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, keys ...string) error
}

// BlobStore persists binary assets and returns a stable public URL.
// The pathHint is the caller-built namespace ({entityKind}/{entityId}/{assetKind}).
type BlobStore interface {
	Upload(ctx context.Context, data []byte, mime, pathHint string) (string, error)
}

// Drafter is the AI drafting collaborator. Callers degrade its failures to
// user-readable placeholder text; errors never reach the surface.
type Drafter interface {
	DraftEmail(ctx context.Context, p Program, q QuoteDetails) (string, error)
	Highlights(ctx context.Context, p Program) ([]string, error)
}
