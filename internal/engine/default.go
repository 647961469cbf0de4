package engine

import (
	"sync"

	"github.com/errdoc-dev/errdoc/internal/catalog"
)

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the process-wide shared engine, created on first use from
// the builtin catalog. It lives for the remainder of the process and stays
// mutable via Append; callers needing isolation construct their own Engine
// with New.
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = New(catalog.Rules())
	})
	return defaultEngine
}
