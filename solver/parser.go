package solver

import (
	"bufio"
	"fmt"
	"io"
)

// isSpace reports whether b is DIMACS whitespace.
func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// readInt reads one signed integer token from r. b holds the last
// byte read (a space, a '-', or a digit); leading whitespace is
// skipped.
func readInt(b *byte, r *bufio.Reader) (int, error) {
	var err error
	for err == nil && isSpace(*b) {
		*b, err = r.ReadByte()
	}
	if err == io.EOF {
		return 0, io.EOF
	}
	if err != nil {
		return 0, fmt.Errorf("cannot read token: %w", err)
	}
	neg := false
	if *b == '-' {
		neg = true
		*b, err = r.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("cannot read token: %w: %v", ErrMalformedInput, err)
		}
	}
	res := 0
	for err == nil {
		if *b < '0' || *b > '9' {
			return 0, fmt.Errorf("%w: %q is not a digit", ErrMalformedInput, *b)
		}
		res = 10*res + int(*b-'0')
		*b, err = r.ReadByte()
		if isSpace(*b) {
			break
		}
	}
	if neg {
		res = -res
	}
	if err == io.EOF {
		// At least one digit was consumed, so the token itself is
		// complete; EOF only means there is nothing after it. The next
		// readInt call will report io.EOF on its own if the caller asks
		// for another token.
		err = nil
	}
	return res, err
}

// skipHeader reads (and discards) the rest of a DIMACS "p cnf ..."
// header line. The clause/variable counts it declares are never
// enforced against what's actually parsed: variable count is derived
// solely from the literals seen.
func skipHeader(r *bufio.Reader) error {
	_, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return fmt.Errorf("cannot read header: %w", err)
	}
	return nil
}

// ParseCNF parses a DIMACS CNF stream into a CNF. Lines beginning
// with 'c' are comments; a line beginning with 'p' is the header and
// is skipped without validation. Every other line is a sequence of
// whitespace-separated signed integers terminated by 0, one clause
// per line.
func ParseCNF(f io.Reader) (*CNF, error) {
	r := bufio.NewReader(f)
	var cnf CNF

	b, err := r.ReadByte()
	for err == nil {
		switch b {
		case 'c':
			for err == nil && b != '\n' {
				b, err = r.ReadByte()
			}
		case 'p':
			if err := skipHeader(r); err != nil {
				return nil, err
			}
		default:
			lits := make([]Lit, 0, 3)
			for {
				val, rerr := readInt(&b, r)
				if rerr == io.EOF {
					if len(lits) != 0 {
						return nil, fmt.Errorf("%w: unterminated clause at EOF", ErrMalformedInput)
					}
					break
				}
				if rerr != nil {
					return nil, rerr
				}
				if val == 0 {
					cnf.Clauses = append(cnf.Clauses, NewClause(lits))
					break
				}
				lit := IntToLit(val)
				lits = append(lits, lit)
				if v := int(lit.Var()) + 1; v > cnf.NbVars {
					cnf.NbVars = v
				}
			}
		}
		b, err = r.ReadByte()
	}
	if err != nil && err != io.EOF {
		return nil, err
	}
	return &cnf, nil
}

// FromSlice builds a CNF directly from a slice of clauses, each given
// as a slice of nonzero signed DIMACS literals, without going through
// DIMACS text. A clause with a literal equal to 0 is a parse error
// rather than a panic, since this is a programmatic entry point
// library consumers may call on untrusted input.
func FromSlice(clauses [][]int) (*CNF, error) {
	var cnf CNF
	for _, line := range clauses {
		lits := make([]Lit, len(line))
		for j, val := range line {
			if val == 0 {
				return nil, fmt.Errorf("%w: literal 0 in clause %v", ErrMalformedInput, line)
			}
			lits[j] = IntToLit(val)
			if v := int(lits[j].Var()) + 1; v > cnf.NbVars {
				cnf.NbVars = v
			}
		}
		cnf.Clauses = append(cnf.Clauses, NewClause(lits))
	}
	return &cnf, nil
}
