package store

import (
	"fmt"
	"sort"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

const schemaName = "bloodconnect"

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// upsertSuffix builds "ON CONFLICT (id) DO UPDATE SET a = EXCLUDED.a, ..."
// for every column except id.
func upsertSuffix(columns map[string]any) string {
	fields := make([]string, 0, len(columns))
	for k := range columns {
		if k == "id" {
			continue
		}
		fields = append(fields, k)
	}
	sort.Strings(fields)

	sets := make([]string, 0, len(fields))
	for _, f := range fields {
		sets = append(sets, fmt.Sprintf("%s = EXCLUDED.%s", f, f))
	}

	return "ON CONFLICT (id) DO UPDATE SET " + strings.Join(sets, ", ")
}
