package postgres

import (
	"strings"

	"gorm.io/gorm"
)

const maxPageSize = 100

// paginate applies limit and offset, clamping the limit to maxPageSize.
// A non-positive limit leaves the query unbounded.
func paginate(query *gorm.DB, limit, offset int) *gorm.DB {
	if limit > 0 {
		if limit > maxPageSize {
			limit = maxPageSize
		}
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	return query
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE wildcards in user input.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
