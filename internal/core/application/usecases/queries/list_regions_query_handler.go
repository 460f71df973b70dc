package queries

import (
	"context"

	"moving/internal/core/domain/model/region"

	"gorm.io/gorm"
)

// ListRegionsQueryHandler reads the prefecture table.
//
// Example:
//
//	handler := NewListRegionsQueryHandler(db)
//	regions, err := handler.Handle(ctx, NewListRegionsQuery())
//	if err != nil {
//	    return err
//	}
//	for _, r := range regions {
//	    fmt.Println(r)
//	}
type ListRegionsQueryHandler struct {
	db *gorm.DB
}

func NewListRegionsQueryHandler(db *gorm.DB) ListRegionsQueryHandler {
	return ListRegionsQueryHandler{db: db}
}

// Handle returns all prefectures ordered by code.
func (h ListRegionsQueryHandler) Handle(ctx context.Context, query ListRegionsQuery) (region.List, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name
		FROM prefectures
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regions := make(region.List, 0, region.MaxID)
	for rows.Next() {
		var (
			id   int
			name string
		)
		if err = rows.Scan(&id, &name); err != nil {
			return nil, err
		}

		r, regionErr := region.NewRegion(region.ID(id), name)
		if regionErr != nil {
			return nil, regionErr
		}
		regions = append(regions, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return regions, nil
}

// ListAll serves the handler as a ports.RegionDirectory.
func (h ListRegionsQueryHandler) ListAll(ctx context.Context) (region.List, error) {
	return h.Handle(ctx, NewListRegionsQuery())
}
