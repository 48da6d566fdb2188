package solver

import (
	"sort"
	"strconv"
	"strings"
)

// FormatModel renders model as DIMACS-sign-convention signed integers
// sorted by variable number ascending, and separately re-checks model
// against cnf as the belt-and-braces validation the CLI prints
// "model validated"/"invalid model" for.
func FormatModel(cnf *CNF, model []int8) (rendered string, valid bool) {
	vars := make([]Var, 0, len(model))
	for v := range model {
		vars = append(vars, Var(v))
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i] < vars[j] })

	parts := make([]string, 0, len(vars))
	for _, v := range vars {
		n := int(v) + 1
		if model[v] < 0 {
			n = -n
		}
		parts = append(parts, strconv.Itoa(n))
	}
	return strings.Join(parts, " "), cnf.Eval(model)
}
