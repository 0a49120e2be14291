// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"sort"

	"github.com/davetashner/advancecard/internal/dataview"
)

// ValidationError describes a single problem with a data view.
type ValidationError struct {
	// Field locates the problem, e.g. "table.columns[2]".
	Field string

	// Message describes what went wrong.
	Message string
}

// Error implements the error interface.
func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

var knownRoles = map[string]bool{
	dataview.RoleMain:     true,
	dataview.RolePrefix:   true,
	dataview.RolePostfix:  true,
	dataview.RoleTooltips: true,
}

// singleRoles may be bound to one column only; the refresh reads the first.
var singleRoles = []string{dataview.RoleMain, dataview.RolePrefix, dataview.RolePostfix}

// ValidateDataView checks a data view for problems a refresh tolerates but a
// host should not produce. An empty slice means the data view is clean.
func ValidateDataView(dv *dataview.DataView) []ValidationError {
	var errs []ValidationError
	t := dv.Table
	if t == nil {
		return append(errs, ValidationError{Field: "table", Message: "missing"})
	}

	for i := range t.Columns {
		col := &t.Columns[i]
		field := fmt.Sprintf("table.columns[%d]", i)
		roles := make([]string, 0, len(col.Roles))
		for role := range col.Roles {
			roles = append(roles, role)
		}
		sort.Strings(roles)
		for _, role := range roles {
			if !knownRoles[role] {
				errs = append(errs, ValidationError{
					Field:   field,
					Message: fmt.Sprintf("unknown role %q", role),
				})
			}
		}
		if col.HasRole(dataview.RoleMain) && !col.IsNumeric() && !col.Type.Text {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "main measure declares no value type",
			})
		}
	}

	for _, role := range singleRoles {
		if n := len(t.WithRole(role)); n > 1 {
			errs = append(errs, ValidationError{
				Field:   "table.columns",
				Message: fmt.Sprintf("role %q bound to %d columns, only the first is used", role, n),
			})
		}
	}
	if len(t.Columns) > 0 && t.Find(dataview.RoleMain) < 0 {
		errs = append(errs, ValidationError{
			Field:   "table.columns",
			Message: fmt.Sprintf("no column bound to %q", dataview.RoleMain),
		})
	}

	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("table.rows[%d]", i),
				Message: fmt.Sprintf("has %d cells for %d columns", len(row), len(t.Columns)),
			})
		}
	}
	return errs
}
