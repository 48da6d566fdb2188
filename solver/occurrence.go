package solver

import mapset "github.com/deckarep/golang-set/v2"

// occTable is the occurrence index: for each variable, the ordered
// list of distinct clause indices where it occurs positively and
// negatively. Built once at init and never mutated afterward — every
// other component treats it as a read-only shared reference.
type occTable struct {
	pos [][]int
	neg [][]int
}

// buildOccurrence scans every clause and every literal once, building
// pos/neg per variable. Deduplication of clause indices within a
// single variable's list uses a generic set
// (github.com/deckarep/golang-set/v2) rather than a linear scan,
// since a variable can occur many times in one clause.
func buildOccurrence(cnf *CNF) occTable {
	occ := occTable{
		pos: make([][]int, cnf.NbVars),
		neg: make([][]int, cnf.NbVars),
	}
	seenPos := make([]mapset.Set[int], cnf.NbVars)
	seenNeg := make([]mapset.Set[int], cnf.NbVars)
	for i, c := range cnf.Clauses {
		for _, l := range c.Lits() {
			v := l.Var()
			if l.IsPositive() {
				if seenPos[v] == nil {
					seenPos[v] = mapset.NewThreadUnsafeSet[int]()
				}
				if seenPos[v].Add(i) {
					occ.pos[v] = append(occ.pos[v], i)
				}
			} else {
				if seenNeg[v] == nil {
					seenNeg[v] = mapset.NewThreadUnsafeSet[int]()
				}
				if seenNeg[v].Add(i) {
					occ.neg[v] = append(occ.neg[v], i)
				}
			}
		}
	}
	return occ
}

// clauses returns the occurrence list of lit: the clauses containing
// lit itself, taken from pos for a positive lit and from neg for a
// negative one. It is the primitive that drives propagation.
func (o *occTable) clauses(l Lit) []int {
	if l.IsPositive() {
		return o.pos[l.Var()]
	}
	return o.neg[l.Var()]
}
