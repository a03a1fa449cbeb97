package trit

// Not swaps False and True. Unknown stays Unknown.
func Not(t Trit) Trit {
	switch t {
	case False:
		return True
	case Unknown:
		return Unknown
	case True:
		return False
	}
	panic(invalid(t))
}

// And is Kleene strong conjunction: False dominates, True needs both sides.
func And(a, b Trit) Trit {
	switch a {
	case False:
		mustValid(b)
		return False
	case Unknown:
		if b == False {
			return False
		}
		mustValid(b)
		return Unknown
	case True:
		mustValid(b)
		return b
	}
	panic(invalid(a))
}

// Or is Kleene strong disjunction: True dominates, False needs both sides.
func Or(a, b Trit) Trit {
	switch a {
	case False:
		mustValid(b)
		return b
	case Unknown:
		if b == True {
			return True
		}
		mustValid(b)
		return Unknown
	case True:
		mustValid(b)
		return True
	}
	panic(invalid(a))
}

func mustValid(t Trit) {
	if !t.Valid() {
		panic(invalid(t))
	}
}
