package repositories

import (
	"fmt"
	"strings"

	"geronimocrm/internal/models"
)

// inPlaceholders renders a "$n,$n+1,..." list of count placeholders
// starting at *argID, advancing argID past them. Placeholder counts
// always match argument counts; values never land in query text.
func inPlaceholders(argID *int, count int) string {
	parts := make([]string, count)
	for i := 0; i < count; i++ {
		parts[i] = fmt.Sprintf("$%d", *argID)
		*argID++
	}
	return strings.Join(parts, ",")
}

// interactionFilterWhere builds the conjunctive WHERE shared by the
// dashboard and report queries over interactions i joined to clients
// c. Empty filter fields contribute no predicate at all. Returns the
// WHERE clause ("" when unconstrained) and its arguments.
func interactionFilterWhere(f models.FilterSet) (string, []any) {
	var (
		conds []string
		args  []any
		argID = 1
	)
	if len(f.Sectors) > 0 {
		ph := inPlaceholders(&argID, len(f.Sectors))
		conds = append(conds, fmt.Sprintf("c.sector IN (%s)", ph))
		for _, s := range f.Sectors {
			args = append(args, s)
		}
	}
	if len(f.Regions) > 0 {
		ph := inPlaceholders(&argID, len(f.Regions))
		conds = append(conds, fmt.Sprintf("c.region IN (%s)", ph))
		for _, s := range f.Regions {
			args = append(args, s)
		}
	}
	if len(f.RepIDs) > 0 {
		ph := inPlaceholders(&argID, len(f.RepIDs))
		conds = append(conds, fmt.Sprintf("i.assigned_to IN (%s)", ph))
		for _, id := range f.RepIDs {
			args = append(args, id)
		}
	}
	if f.Start != "" {
		conds = append(conds, fmt.Sprintf("i.interaction_date >= $%d", argID))
		args = append(args, f.Start)
		argID++
	}
	if f.End != "" {
		conds = append(conds, fmt.Sprintf("i.interaction_date <= $%d", argID))
		args = append(args, f.End)
		argID++
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}
