package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-aptos/pkg/chunk"
)

// insertStatement is a multi-row INSERT with positional parameters.
type insertStatement struct {
	table    string
	columns  []string
	conflict string
}

func (s insertStatement) sql(rows int) string {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(s.table)
	b.WriteString(" (")
	b.WriteString(strings.Join(s.columns, ", "))
	b.WriteString(") VALUES ")

	param := 1
	for i := 0; i < rows; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		for j := range s.columns {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(param))
			param++
		}
		b.WriteByte(')')
	}

	if s.conflict != "" {
		b.WriteByte(' ')
		b.WriteString(s.conflict)
	}
	return b.String()
}

// execChunked writes items in chunks that stay under maxParameters and returns the affected row count.
// Chunks run in order; the first failure stops the write.
func execChunked[T any](ctx context.Context, exec Executor, stmt insertStatement, maxParameters int, items []T, values func(T) []any) (int64, error) {
	fields := len(stmt.columns)
	var affected int64

	for i, part := range chunk.Split(items, chunk.Size(maxParameters, fields)) {
		args := make([]any, 0, len(part)*fields)
		for _, item := range part {
			args = append(args, values(item)...)
		}

		tag, err := exec.Exec(ctx, stmt.sql(len(part)), args...)
		if err != nil {
			return affected, fmt.Errorf("insert %s chunk %d (%d rows): %w", stmt.table, i, len(part), err)
		}
		affected += tag.RowsAffected()
	}
	return affected, nil
}
