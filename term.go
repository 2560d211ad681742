package ellipticcurve

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/pebble8888/ellipticcurve/bigint"
)

// Term is a single monomial with an arbitrary-precision integer
// coefficient: coefficient * x^XExp * y^YExp * q^QExp * variable.
type Term struct {
	Coefficient *big.Int
	Monomial    Monomial
}

// NewTerm returns the term c * m.
func NewTerm(c *big.Int, m Monomial) Term {
	return Term{Coefficient: new(big.Int).Set(c), Monomial: m}
}

// IsZero reports whether t's coefficient is zero.
func (t Term) IsZero() bool { return t.Coefficient.Sign() == 0 }

// Neg returns -t.
func (t Term) Neg() Term {
	return Term{Coefficient: new(big.Int).Neg(t.Coefficient), Monomial: t.Monomial}
}

// Mul returns the product t*u: coefficients multiply, exponents add.
// It panics if both t and u carry a non-empty subscripted variable.
func (t Term) Mul(u Term) Term {
	c := new(big.Int).Mul(t.Coefficient, u.Coefficient)
	return Term{Coefficient: c, Monomial: t.Monomial.Mul(u.Monomial)}
}

// Div returns the quotient t/u. u must be variable-free; the
// coefficient is floor-divided and exponents subtract.
func (t Term) Div(u Term) Term {
	c := bigint.DivFloor(t.Coefficient, u.Coefficient)
	return Term{Coefficient: c, Monomial: t.Monomial.Div(u.Monomial)}
}

// Pow returns t raised to the n'th power (n >= 0). Defined only for
// variable-free terms.
func (t Term) Pow(n int64) Term {
	c := bigint.Power(t.Coefficient, n)
	return Term{Coefficient: c, Monomial: t.Monomial.Pow(n)}
}

// PowerModulo returns t^n mod p, reducing the coefficient modulo p.
func (t Term) PowerModulo(n int64, p *big.Int) (Term, error) {
	c, err := bigint.PowerModulo(t.Coefficient, n, p)
	if err != nil {
		return Term{}, err
	}
	return Term{Coefficient: c, Monomial: t.Monomial.Pow(n)}, nil
}

// ToFrob applies the Frobenius substitution x->x^n, y->y^n.
func (t Term) ToFrob(n int64) Term {
	return Term{Coefficient: new(big.Int).Set(t.Coefficient), Monomial: t.Monomial.ToFrob(n)}
}

// ToQPower multiplies the q exponent by n.
func (t Term) ToQPower(n int64) Term {
	return Term{Coefficient: new(big.Int).Set(t.Coefficient), Monomial: t.Monomial.ToQPower(n)}
}

// Modulo returns t with its coefficient reduced to [0, p).
func (t Term) Modulo(p *big.Int) Term {
	return Term{Coefficient: bigint.ModFloor(t.Coefficient, p), Monomial: t.Monomial}
}

// DerivativeX returns the formal derivative of t with respect to x.
func (t Term) DerivativeX() Term {
	if t.Monomial.XExp == 0 {
		return Term{Coefficient: big.NewInt(0), Monomial: MonomialOne()}
	}
	c := new(big.Int).Mul(t.Coefficient, big.NewInt(t.Monomial.XExp))
	m := t.Monomial
	m.XExp--
	return Term{Coefficient: c, Monomial: m}
}

// DerivativeY returns the formal derivative of t with respect to y.
func (t Term) DerivativeY() Term {
	if t.Monomial.YExp == 0 {
		return Term{Coefficient: big.NewInt(0), Monomial: MonomialOne()}
	}
	c := new(big.Int).Mul(t.Coefficient, big.NewInt(t.Monomial.YExp))
	m := t.Monomial
	m.YExp--
	return Term{Coefficient: c, Monomial: m}
}

// EvalXY returns coefficient * x^XExp * y^YExp. The caller ensures the
// variable and q factors are absent.
func (t Term) EvalXY(x, y *big.Int) *big.Int {
	r := new(big.Int).Set(t.Coefficient)
	r.Mul(r, bigint.Power(x, t.Monomial.XExp))
	r.Mul(r, bigint.Power(y, t.Monomial.YExp))
	return r
}

// String renders t with shorthands for coefficient +-1 and exponent 1,
// matching Polynomial's term-printing convention.
func (t Term) String() string {
	var b strings.Builder
	writeCoefficient(&b, t.Coefficient, t.Monomial, true)
	ms := t.Monomial.String()
	if ms != "" {
		if b.Len() != 0 && t.Coefficient.Sign() != 0 {
			b.WriteString(" ")
		}
		b.WriteString(ms)
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

func writeCoefficient(b *strings.Builder, c *big.Int, m Monomial, leading bool) {
	if c.Sign() == 0 {
		return
	}
	hasMonomial := m.String() != ""
	switch {
	case hasMonomial && c.CmpAbs(big.NewInt(1)) == 0:
		if c.Sign() < 0 {
			b.WriteString("-")
		} else if !leading {
			b.WriteString("+")
		}
	default:
		switch {
		case c.Sign() < 0:
			fmt.Fprintf(b, "- %s", new(big.Int).Abs(c).String())
		case leading:
			fmt.Fprintf(b, "%s", c.String())
		default:
			fmt.Fprintf(b, "+ %s", c.String())
		}
	}
}
