// Package blob is the object-storage collaborator: it persists image assets
// under a local bucket directory and hands back stable public URLs. The API
// serves the bucket read-only under /images/.
package blob

import (
	"context"
	crand "crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

var ErrUpload = errors.New("blob: upload failed")

type Store struct {
	dir     string
	baseURL string
}

// New opens (creating if needed) the bucket directory.
func New(dir, baseURL string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}
	return &Store{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Dir is the bucket root, for mounting a file server over it.
func (s *Store) Dir() string { return s.dir }

// Upload persists data under a collision-resistant name inside the pathHint
// namespace and returns the public URL. Existing objects are never
// overwritten; a name clash is an error.
func (s *Store) Upload(ctx context.Context, data []byte, mime, pathHint string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	hint, err := cleanHint(pathHint)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s-%d.%s", randToken(11), time.Now().UnixMilli(), extFor(mime))
	rel := name
	if hint != "" {
		rel = path.Join(hint, name)
	}

	full := filepath.Join(s.dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	return s.baseURL + "/" + rel, nil
}

// cleanHint normalizes the caller-built namespace and rejects traversal.
func cleanHint(hint string) (string, error) {
	hint = strings.Trim(strings.TrimSpace(hint), "/")
	if hint == "" {
		return "", nil
	}
	cleaned := path.Clean(hint)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") || path.IsAbs(cleaned) {
		return "", fmt.Errorf("%w: invalid path hint %q", ErrUpload, hint)
	}
	return cleaned, nil
}

func extFor(mime string) string {
	switch {
	case strings.Contains(mime, "png"):
		return "png"
	case strings.Contains(mime, "webp"):
		return "webp"
	case strings.Contains(mime, "gif"):
		return "gif"
	}
	return "jpg"
}

const tokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func randToken(n int) string {
	b := make([]byte, n)
	if _, err := crand.Read(b); err != nil {
		// degrade to a time-derived token; uniqueness still comes from UnixMilli
		return fmt.Sprintf("%x", time.Now().UnixNano())
	}
	for i := range b {
		b[i] = tokenAlphabet[int(b[i])%len(tokenAlphabet)]
	}
	return string(b)
}

// ParseDataURL splits an inline data URL into its bytes and MIME type.
func ParseDataURL(dataURL string) ([]byte, string, error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return nil, "", fmt.Errorf("%w: not a data URL", ErrUpload)
	}
	meta, payload, ok := strings.Cut(dataURL[len("data:"):], ",")
	if !ok {
		return nil, "", fmt.Errorf("%w: malformed data URL", ErrUpload)
	}
	mime := strings.TrimSuffix(meta, ";base64")
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	return data, mime, nil
}
