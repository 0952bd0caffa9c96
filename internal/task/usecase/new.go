package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"duedate-service/internal/task"
	"duedate-service/pkg/duedate"
	pkgLog "duedate-service/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	parser *duedate.Parser
	cache  *expirable.LRU[string, task.ExtractOutput]
}

// New creates a new task UseCase instance. cacheSize <= 0 disables the
// extraction result cache.
func New(l pkgLog.Logger, parser *duedate.Parser, cacheSize int, cacheTTL time.Duration) *implUseCase {
	var cache *expirable.LRU[string, task.ExtractOutput]
	if cacheSize > 0 {
		cache = expirable.NewLRU[string, task.ExtractOutput](cacheSize, nil, cacheTTL)
	}
	return &implUseCase{
		l:      l,
		parser: parser,
		cache:  cache,
	}
}
