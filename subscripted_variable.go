package ellipticcurve

import "fmt"

// SubscriptedVariable is the symbolic coefficient c_{i,j} used when
// reconstructing a modular polynomial Φ_ℓ. The zero value is the empty
// variable, which behaves as the multiplicative identity "1" when it
// appears as a monomial factor.
type SubscriptedVariable struct {
	I, J  int64
	Empty bool
}

// EmptyVariable returns the identity factor "1".
func EmptyVariable() SubscriptedVariable {
	return SubscriptedVariable{Empty: true}
}

// NewSubscriptedVariable returns c_{i,j}.
func NewSubscriptedVariable(i, j int64) SubscriptedVariable {
	return SubscriptedVariable{I: i, J: j}
}

// Equal reports whether v and w denote the same variable.
func (v SubscriptedVariable) Equal(w SubscriptedVariable) bool {
	if v.Empty != w.Empty {
		return false
	}
	if v.Empty {
		return true
	}
	return v.I == w.I && v.J == w.J
}

// Compare orders the empty variable before all non-empty ones, and
// non-empty variables lexicographically by (i, j).
func (v SubscriptedVariable) Compare(w SubscriptedVariable) int {
	switch {
	case v.Empty && w.Empty:
		return 0
	case v.Empty && !w.Empty:
		return -1
	case !v.Empty && w.Empty:
		return 1
	}
	if v.I != w.I {
		if v.I < w.I {
			return -1
		}
		return 1
	}
	if v.J != w.J {
		if v.J < w.J {
			return -1
		}
		return 1
	}
	return 0
}

// String renders v as "c_{i}_{j}", or "" when v is empty.
func (v SubscriptedVariable) String() string {
	if v.Empty {
		return ""
	}
	return fmt.Sprintf("c_%d_%d", v.I, v.J)
}

// SubscriptedVariableConverter bijects the set
// { (i,j) : 0<=i<j<=p } ∪ { (i,i) : 0<=i<=p } onto a contiguous index
// range 0..Count(), enumerating strictly-upper-triangular pairs in
// lexicographic order first, then diagonal pairs in i order. p must be
// prime.
type SubscriptedVariableConverter struct {
	P int64
}

// NewSubscriptedVariableConverter returns a converter for modulus p.
// It panics if p is not prime, matching the precondition the original
// subscripted-variable module enforces at construction.
func NewSubscriptedVariableConverter(p int64) *SubscriptedVariableConverter {
	if p < 2 {
		panic("ellipticcurve: p must be >= 2")
	}
	if !isPrimeInt64(p) {
		panic("ellipticcurve: p must be prime")
	}
	return &SubscriptedVariableConverter{P: p}
}

// Count returns the total number of distinct subscripted variables,
// p*(p+1)/2 + (p+1).
func (c *SubscriptedVariableConverter) Count() int64 {
	var idx int64
	for i := int64(0); i <= c.P; i++ {
		for j := i + 1; j <= c.P; j++ {
			idx++
		}
	}
	for i := int64(0); i <= c.P; i++ {
		_ = i
		idx++
	}
	return idx
}

// IndexFromVariable returns the index of v, or -1 if v is empty. It
// panics if v is out of range.
func (c *SubscriptedVariableConverter) IndexFromVariable(v SubscriptedVariable) int64 {
	if v.Empty {
		return -1
	}
	var idx int64
	for i := int64(0); i <= c.P; i++ {
		for j := i + 1; j <= c.P; j++ {
			if v.I == i && v.J == j {
				return idx
			}
			idx++
		}
	}
	for i := int64(0); i <= c.P; i++ {
		if v.I == i && v.J == i {
			return idx
		}
		idx++
	}
	panic("ellipticcurve: invalid variable")
}

// VariableFromIndex returns the variable at the given index.
func (c *SubscriptedVariableConverter) VariableFromIndex(index int64) SubscriptedVariable {
	var local int64
	for i := int64(0); i <= c.P; i++ {
		for j := i + 1; j <= c.P; j++ {
			if local == index {
				return NewSubscriptedVariable(i, j)
			}
			local++
		}
	}
	for i := int64(0); i <= c.P; i++ {
		if local == index {
			return NewSubscriptedVariable(i, i)
		}
		local++
	}
	panic("ellipticcurve: invalid index")
}

func isPrimeInt64(n int64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := int64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
