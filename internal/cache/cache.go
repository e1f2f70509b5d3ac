// Package cache stores classification results keyed by exact title text.
// Classification is a pure function of the title and the classifier settings,
// so shared backends scope their keys with Namespace; entries expire only to
// bound memory.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"titleguard/internal/heuristics"
)

// ResultCache is a title → result store.
type ResultCache interface {
	Get(ctx context.Context, title string) (heuristics.Result, bool, error)
	Set(ctx context.Context, title string, res heuristics.Result) error
}

// Key derives a fixed-length cache key for a title.
func Key(prefix, title string) string {
	sum := sha256.Sum256([]byte(title))
	return prefix + hex.EncodeToString(sum[:])
}

// Namespace scopes a key prefix to the tagger engine and block threshold, so
// processes configured differently never read each other's results.
func Namespace(prefix, engine string, threshold int) string {
	return fmt.Sprintf("%s%s:t%d:", prefix, engine, threshold)
}

// Nop caches nothing.
type Nop struct{}

var _ ResultCache = Nop{}

func (Nop) Get(context.Context, string) (heuristics.Result, bool, error) {
	return heuristics.Result{}, false, nil
}

func (Nop) Set(context.Context, string, heuristics.Result) error { return nil }
