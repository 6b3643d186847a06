package memquery

import (
	"sort"

	"github.com/roach88/criteria/internal/convert"
	"github.com/roach88/criteria/internal/criteria"
)

// Matches reports whether r satisfies the accumulated predicates.
// A builder that recorded an error matches nothing.
func (b *Builder) Matches(r Record) bool {
	if b.err != nil {
		return false
	}
	ok, _ := b.root.eval(r)
	return ok
}

// Apply filters, sorts and pages records. The input slice is not modified.
// Returns the builder's first recorded error, if any, and no records.
func (b *Builder) Apply(records []Record) ([]Record, error) {
	if b.err != nil {
		return nil, b.err
	}
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if b.Matches(r) {
			out = append(out, r)
		}
	}

	if len(b.order) > 0 {
		sort.SliceStable(out, func(i, j int) bool {
			for _, term := range b.order {
				c := compareAny(out[i][term.field], out[j][term.field])
				if c == 0 {
					continue
				}
				if term.direction == criteria.Desc {
					return c > 0
				}
				return c < 0
			}
			return false
		})
	}

	if b.offset >= len(out) {
		return out[:0], nil
	}
	out = out[b.offset:]
	if b.limit > 0 && b.limit < len(out) {
		out = out[:b.limit]
	}
	return out, nil
}

// eval evaluates a scope as an OR of AND-runs, mirroring SQL precedence.
// The second result is false when the scope holds no effective clause;
// such a scope is neutral and matches everything.
func (s *scope) eval(r Record) (bool, bool) {
	result := false
	run := true
	effective := 0

	for _, c := range s.clauses {
		var ok bool
		if c.group != nil {
			matched, present := c.group.eval(r)
			if !present {
				continue
			}
			ok = matched
		} else {
			ok = compare(r, c.field, c.operator, c.value)
		}

		if effective > 0 && c.connector == convert.ConnectorOr {
			result = result || run
			run = true
		}
		run = run && ok
		effective++
	}

	if effective == 0 {
		return true, false
	}
	return result || run, true
}
