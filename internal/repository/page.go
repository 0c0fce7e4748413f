package repository

import (
	"strings"

	"github.com/just-nibble/codehost/internal/domain"
	"gorm.io/gorm"
)

// newestFirst orders commits and issues, with the id breaking ties between
// rows created in the same instant.
const newestFirst = "created_at DESC, id DESC"

// paginate applies a skip/limit window. Out of range values are clamped.
func paginate(p domain.Pagination) func(*gorm.DB) *gorm.DB {
	p = p.Normalize(domain.DefaultLimit)
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Skip).Limit(p.Limit)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern returns a lowercased LIKE pattern matching q anywhere,
// with q's own wildcards escaped. Use it with LOWER(col) LIKE ? ESCAPE '\'.
func containsPattern(q string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(q)) + "%"
}
