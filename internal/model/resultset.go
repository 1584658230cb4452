package model

import (
	"fmt"
	"strings"
)

// ResultSet is a tabular query result: column names plus row values.
type ResultSet struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Empty reports whether the result set contains no rows.
func (rs ResultSet) Empty() bool {
	return len(rs.Rows) == 0
}

// String renders the result set as pipe-separated text, suitable for
// inclusion in an LLM prompt.
func (rs ResultSet) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(rs.Columns, " | "))
	b.WriteString("\n")
	for _, row := range rs.Rows {
		b.WriteString(strings.Join(row, " | "))
		b.WriteString("\n")
	}
	return b.String()
}

// Summary returns a short description of the result shape, for logging.
func (rs ResultSet) Summary() string {
	return fmt.Sprintf("%d column(s), %d row(s)", len(rs.Columns), len(rs.Rows))
}
