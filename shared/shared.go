package shared

import (
	"strings"

	"worktrack/shared/dto"
)

// BuildCacheKey joins key segments with the cache's canonical separator.
func BuildCacheKey(segments ...string) string {
	return strings.Join(segments, ":")
}

// FilterByID builds the single-row filter every by-id operation uses.
func FilterByID(id int64, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
