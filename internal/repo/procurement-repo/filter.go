package procurementrepo

import (
	"fmt"
	"strings"

	"github.com/groupbuy/procurements/internal/domain"
)

// BuildWhereClause turns the closed filter set into a parameterized WHERE
// clause. Placeholders are numbered in declaration order: status, city,
// category_id, organizer_id. No filters yields an empty clause.
func BuildWhereClause(f domain.ProcurementFilters) (string, []any) {
	var conditions []string
	var args []any

	if f.Status != nil {
		args = append(args, *f.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.City != nil {
		args = append(args, *f.City)
		conditions = append(conditions, fmt.Sprintf("city = $%d", len(args)))
	}
	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if f.OrganizerID != nil {
		args = append(args, *f.OrganizerID)
		conditions = append(conditions, fmt.Sprintf("organizer_id = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}
