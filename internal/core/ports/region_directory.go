package ports

import (
	"context"

	"moving/internal/core/domain/model/region"
)

// RegionDirectory lists the prefectures offered as origin and destination.
//
// ListAll is read-only and returns the same ordered sequence on every call
// until the reference data changes. Implementations are safe for concurrent use.
type RegionDirectory interface {
	ListAll(ctx context.Context) (region.List, error)
}
