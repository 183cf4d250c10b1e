package postgres

import (
	"fmt"
	"strings"
)

// where accumulates AND-ed conditions and their positional arguments.
type where struct {
	conds []string
	args  []any
}

// arg registers v and returns its placeholder.
func (w *where) arg(v any) string {
	w.args = append(w.args, v)
	return fmt.Sprintf("$%d", len(w.args))
}

func (w *where) and(cond string) {
	w.conds = append(w.conds, cond)
}

// search adds a case-insensitive substring match of q against any of cols.
// Blank queries are ignored.
func (w *where) search(q string, cols ...string) {
	q = strings.TrimSpace(q)
	if q == "" || len(cols) == 0 {
		return
	}
	ph := w.arg("%" + escapeLike(q) + "%")
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = fmt.Sprintf("%s ILIKE %s", col, ph)
	}
	w.and("(" + strings.Join(parts, " OR ") + ")")
}

func (w *where) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
