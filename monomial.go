package ellipticcurve

import (
	"cmp"
	"fmt"
	"strings"
)

// Monomial is the tuple (x_exp, y_exp, q_exp, variable). Exponents are
// signed (q_exp may be negative, to represent the q⁻¹ term in a
// j-invariant q-expansion); x_exp and y_exp are non-negative on every
// path this module exercises, but the type does not enforce that so
// that Frobenius substitution and evaluation can share the same
// representation.
//
// Exponents are represented as machine int64s rather than arbitrary
// precision integers: every exponent arising in this module is bounded
// by a small multiple of the prime ℓ or the field characteristic p,
// values that comfortably fit in 64 bits for any curve this
// implementation can otherwise handle (the coefficients, not the
// exponents, are where unbounded precision is required).
type Monomial struct {
	XExp     int64
	YExp     int64
	QExp     int64
	Variable SubscriptedVariable
}

// MonomialOne is the empty monomial, representing the constant 1.
func MonomialOne() Monomial {
	return Monomial{Variable: EmptyVariable()}
}

// Equal reports whether m and n are identical tuples.
func (m Monomial) Equal(n Monomial) bool {
	return m.XExp == n.XExp && m.YExp == n.YExp && m.QExp == n.QExp && m.Variable.Equal(n.Variable)
}

// Compare implements the canonical total order: lexicographic on
// (x_exp, y_exp, q_exp, variable).
func (m Monomial) Compare(n Monomial) int {
	if c := cmp.Compare(m.XExp, n.XExp); c != 0 {
		return c
	}
	if c := cmp.Compare(m.YExp, n.YExp); c != 0 {
		return c
	}
	if c := cmp.Compare(m.QExp, n.QExp); c != 0 {
		return c
	}
	return m.Variable.Compare(n.Variable)
}

// MonomialOrder is the Order function required by omap.MapFunc: the
// canonical lexicographic order on (x_exp, y_exp, q_exp, variable).
func MonomialOrder(a, b Monomial) int { return a.Compare(b) }

// Mul returns the monomial product m*n: exponents add componentwise.
// It panics if both m and n carry a non-empty subscripted variable,
// since the linear system that reconstructs Φ_ℓ is linear in those
// unknowns and never needs their product.
func (m Monomial) Mul(n Monomial) Monomial {
	if !m.Variable.Empty && !n.Variable.Empty {
		panic("ellipticcurve: product of two subscripted variables")
	}
	v := m.Variable
	if v.Empty {
		v = n.Variable
	}
	return Monomial{
		XExp:     m.XExp + n.XExp,
		YExp:     m.YExp + n.YExp,
		QExp:     m.QExp + n.QExp,
		Variable: v,
	}
}

// Div returns the monomial quotient m/n: exponents subtract
// componentwise. n must be variable-free.
func (m Monomial) Div(n Monomial) Monomial {
	if !n.Variable.Empty {
		panic("ellipticcurve: division by a monomial carrying a variable")
	}
	return Monomial{
		XExp:     m.XExp - n.XExp,
		YExp:     m.YExp - n.YExp,
		QExp:     m.QExp - n.QExp,
		Variable: m.Variable,
	}
}

// Pow returns m raised to the n'th power (n >= 0). It panics if m
// carries a subscripted variable, since exponentiating a linear
// unknown is outside the contract this module relies on.
func (m Monomial) Pow(n int64) Monomial {
	if !m.Variable.Empty {
		panic("ellipticcurve: power of a monomial carrying a variable")
	}
	if n < 0 {
		panic("ellipticcurve: negative monomial power")
	}
	return Monomial{XExp: m.XExp * n, YExp: m.YExp * n, QExp: m.QExp * n, Variable: EmptyVariable()}
}

// ToFrob returns m with x and y exponents multiplied by n (the
// Frobenius substitution x -> x^n, y -> y^n).
func (m Monomial) ToFrob(n int64) Monomial {
	return Monomial{XExp: m.XExp * n, YExp: m.YExp * n, QExp: m.QExp, Variable: m.Variable}
}

// ToYPower returns m with the y exponent multiplied by n.
func (m Monomial) ToYPower(n int64) Monomial {
	return Monomial{XExp: m.XExp, YExp: m.YExp * n, QExp: m.QExp, Variable: m.Variable}
}

// ToQPower returns m with the q exponent multiplied by n.
func (m Monomial) ToQPower(n int64) Monomial {
	return Monomial{XExp: m.XExp, YExp: m.YExp, QExp: m.QExp * n, Variable: m.Variable}
}

// HasY reports whether m carries a non-zero y exponent.
func (m Monomial) HasY() bool { return m.YExp != 0 }

// HasQ reports whether m carries a non-zero q exponent.
func (m Monomial) HasQ() bool { return m.QExp != 0 }

// IsVariableFree reports whether m carries no subscripted variable.
func (m Monomial) IsVariableFree() bool { return m.Variable.Empty }

// String renders m in the form "x^3 y c_1_2", omitting any factor
// with a zero exponent and omitting exponent "^1".
func (m Monomial) String() string {
	var b strings.Builder
	writeFactor(&b, "x", m.XExp)
	writeFactor(&b, "y", m.YExp)
	writeFactor(&b, "q", m.QExp)
	if !m.Variable.Empty {
		if b.Len() != 0 {
			b.WriteString(" ")
		}
		b.WriteString(m.Variable.String())
	}
	return b.String()
}

func writeFactor(b *strings.Builder, name string, exp int64) {
	if exp == 0 {
		return
	}
	if b.Len() != 0 {
		b.WriteString(" ")
	}
	if exp == 1 {
		b.WriteString(name)
	} else {
		fmt.Fprintf(b, "%s^%d", name, exp)
	}
}
