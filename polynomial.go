package ellipticcurve

import (
	"iter"
	"math/big"
	"strings"

	"github.com/jba/omap"
	"github.com/pkg/errors"

	"github.com/pebble8888/ellipticcurve/bigint"
)

// ErrNonMonomialDivision reports an attempt to divide a polynomial by a
// divisor with more than one term.
var ErrNonMonomialDivision = errors.New("ellipticcurve: divisor is not a single monomial")

// ErrNotUnivariate reports that PolynomialModular or GCD was called on a
// polynomial that still contains y or q.
var ErrNotUnivariate = errors.New("ellipticcurve: polynomial is not univariate in x")

// Polynomial is a sparse multivariate polynomial over Z[x,y], optionally
// extended with a formal variable q and subscripted-variable symbols. It
// is represented as an ordered mapping from Monomial to a non-zero
// coefficient: no entry has a zero coefficient, every Monomial key is
// unique, and iteration follows the canonical monomial order.
type Polynomial struct {
	m *omap.MapFunc[Monomial, *big.Int]
}

// NewPolynomial returns the polynomial that is the sum of the given terms.
func NewPolynomial(terms ...Term) *Polynomial {
	p := &Polynomial{m: omap.NewMapFunc[Monomial, *big.Int](MonomialOrder)}
	for _, t := range terms {
		p.addTerm(1, t)
	}
	return p
}

// Zero returns the zero polynomial.
func Zero() *Polynomial { return NewPolynomial() }

// One returns the constant polynomial 1.
func One() *Polynomial { return NewPolynomial(NewTerm(big.NewInt(1), MonomialOne())) }

// Len reports the number of non-zero terms.
func (x *Polynomial) Len() int { return x.m.Len() }

// IsZero reports whether x has no terms.
func (x *Polynomial) IsZero() bool { return x.m.Len() == 0 }

// Terms iterates the terms of x from highest to lowest monomial.
func (x *Polynomial) Terms() iter.Seq2[*big.Int, Monomial] {
	return func(yield func(*big.Int, Monomial) bool) {
		for w, c := range x.m.Backward() {
			if !yield(c, w) {
				return
			}
		}
	}
}

// Equal reports whether x and y have the same monomials and coefficients.
func (x *Polynomial) Equal(y *Polynomial) bool {
	if x.m.Len() != y.m.Len() {
		return false
	}
	for i := range x.m.Len() {
		xw, xc := x.m.At(i)
		yw, yc := y.m.At(i)
		if !xw.Equal(yw) {
			return false
		}
		if xc.Cmp(yc) != 0 {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of x.
func (x *Polynomial) Clone() *Polynomial {
	z := &Polynomial{m: omap.NewMapFunc[Monomial, *big.Int](MonomialOrder)}
	for w, c := range x.m.All() {
		z.m.Set(w, new(big.Int).Set(c))
	}
	return z
}

func (x *Polynomial) addTerm(sign int, t Term) {
	if t.Coefficient.Sign() == 0 {
		return
	}
	c, ok := x.m.Get(t.Monomial)
	if !ok {
		c = big.NewInt(0)
	} else {
		c = new(big.Int).Set(c)
	}
	if sign < 0 {
		c.Sub(c, t.Coefficient)
	} else {
		c.Add(c, t.Coefficient)
	}
	if c.Sign() == 0 {
		x.m.Delete(t.Monomial)
	} else {
		x.m.Set(t.Monomial, c)
	}
}

// Add returns x+y.
func (x *Polynomial) Add(y *Polynomial) *Polynomial {
	z := x.Clone()
	for w, c := range y.m.All() {
		z.addTerm(1, Term{Coefficient: c, Monomial: w})
	}
	return z
}

// Sub returns x-y.
func (x *Polynomial) Sub(y *Polynomial) *Polynomial {
	z := x.Clone()
	for w, c := range y.m.All() {
		z.addTerm(-1, Term{Coefficient: c, Monomial: w})
	}
	return z
}

// Neg returns -x.
func (x *Polynomial) Neg() *Polynomial {
	z := &Polynomial{m: omap.NewMapFunc[Monomial, *big.Int](MonomialOrder)}
	for w, c := range x.m.All() {
		z.m.Set(w, new(big.Int).Neg(c))
	}
	return z
}

// Mul returns x*y.
func (x *Polynomial) Mul(y *Polynomial) *Polynomial {
	z := &Polynomial{m: omap.NewMapFunc[Monomial, *big.Int](MonomialOrder)}
	for xw, xc := range x.m.All() {
		for yw, yc := range y.m.All() {
			c := new(big.Int).Mul(xc, yc)
			z.addTerm(1, Term{Coefficient: c, Monomial: xw.Mul(yw)})
		}
	}
	return z
}

// MulScalar returns c*x.
func (x *Polynomial) MulScalar(c *big.Int) *Polynomial {
	z := &Polynomial{m: omap.NewMapFunc[Monomial, *big.Int](MonomialOrder)}
	for w, xc := range x.m.All() {
		nc := new(big.Int).Mul(xc, c)
		if nc.Sign() != 0 {
			z.m.Set(w, nc)
		}
	}
	return z
}

// DivMonomial returns x divided by the single-term polynomial divisor:
// each coefficient is floor-divided and exponents subtract. It returns
// ErrNonMonomialDivision if divisor does not have exactly one term.
func (x *Polynomial) DivMonomial(divisor *Polynomial) (*Polynomial, error) {
	if divisor.Len() != 1 {
		return nil, errors.Wrapf(ErrNonMonomialDivision, "divisor has %d terms", divisor.Len())
	}
	dt := divisor.LeadingTerm()
	z := &Polynomial{m: omap.NewMapFunc[Monomial, *big.Int](MonomialOrder)}
	for w, c := range x.m.All() {
		nc := bigint.DivFloor(c, dt.Coefficient)
		if nc.Sign() != 0 {
			z.m.Set(w.Div(dt.Monomial), nc)
		}
	}
	return z, nil
}

// Pow returns x raised to the n'th power (n >= 0) via exponentiation by
// squaring.
func (x *Polynomial) Pow(n int64) *Polynomial {
	if n < 0 {
		panic("ellipticcurve: negative polynomial power")
	}
	if n == 0 {
		return One()
	}
	result := One()
	base := x.Clone()
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result
}

// PowerModulo returns x^n with every coefficient reduced modulo p after
// every multiplication, keeping intermediate coefficients small. This
// is required for Schoof's Frobenius computations.
func (x *Polynomial) PowerModulo(n int64, p *big.Int) (*Polynomial, error) {
	if n < 0 {
		panic("ellipticcurve: negative polynomial power")
	}
	if p.Cmp(big.NewInt(1)) <= 0 {
		return nil, errors.Wrapf(bigint.ErrDomain, "modulus %s must be > 1", p)
	}
	result := One()
	base := x.Clone().ModularAssign(p)
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base).ModularAssign(p)
		}
		base = base.Mul(base).ModularAssign(p)
		n >>= 1
	}
	return result, nil
}

// PowerOmitHighOrderQ multiplies x by itself n times, discarding every
// term whose q exponent exceeds order at each step. Used for truncated
// q-expansions.
func (x *Polynomial) PowerOmitHighOrderQ(n int64, order int64) *Polynomial {
	result := One()
	base := x.Clone().OmitHighOrderQ(order)
	for i := int64(0); i < n; i++ {
		result = result.Mul(base).OmitHighOrderQ(order)
	}
	return result
}

// Modulo returns x with every coefficient reduced to [0, p).
func (x *Polynomial) Modulo(p *big.Int) *Polynomial {
	return x.Clone().ModularAssign(p)
}

// ModularAssign reduces every coefficient of x to [0, p) in place and
// returns x.
func (x *Polynomial) ModularAssign(p *big.Int) *Polynomial {
	var toDelete []Monomial
	for w, c := range x.m.All() {
		nc := bigint.ModFloor(c, p)
		if nc.Sign() == 0 {
			toDelete = append(toDelete, w)
		} else {
			x.m.Set(w, nc)
		}
	}
	for _, w := range toDelete {
		x.m.Delete(w)
	}
	return x
}

// LeadingTerm returns the term of the highest monomial. It panics on
// the zero polynomial.
func (x *Polynomial) LeadingTerm() Term {
	if x.m.Len() == 0 {
		panic("ellipticcurve: zero polynomial has no leading term")
	}
	w, c := x.m.At(x.m.Len() - 1)
	return Term{Coefficient: c, Monomial: w}
}

// HighestTermX returns the term with the largest monomial in the total
// order; the zero polynomial returns the zero term.
func (x *Polynomial) HighestTermX() Term {
	if x.m.Len() == 0 {
		return Term{Coefficient: big.NewInt(0), Monomial: MonomialOne()}
	}
	return x.LeadingTerm()
}

// ToFrob applies the Frobenius substitution x->x^n, y->y^n to every term.
func (x *Polynomial) ToFrob(n int64) *Polynomial {
	z := &Polynomial{m: omap.NewMapFunc[Monomial, *big.Int](MonomialOrder)}
	for w, c := range x.m.All() {
		z.addTerm(1, Term{Coefficient: c, Monomial: w.ToFrob(n)})
	}
	return z
}

// ToYPower multiplies the y exponent of every term by n.
func (x *Polynomial) ToYPower(n int64) *Polynomial {
	z := &Polynomial{m: omap.NewMapFunc[Monomial, *big.Int](MonomialOrder)}
	for w, c := range x.m.All() {
		z.addTerm(1, Term{Coefficient: c, Monomial: w.ToYPower(n)})
	}
	return z
}

// ToQPower multiplies the q exponent of every term by n.
func (x *Polynomial) ToQPower(n int64) *Polynomial {
	z := &Polynomial{m: omap.NewMapFunc[Monomial, *big.Int](MonomialOrder)}
	for w, c := range x.m.All() {
		z.addTerm(1, Term{Coefficient: c, Monomial: w.ToQPower(n)})
	}
	return z
}

// HasY reports whether any term of x carries a non-zero y exponent.
func (x *Polynomial) HasY() bool {
	for w, _ := range x.m.All() {
		if w.HasY() {
			return true
		}
	}
	return false
}

// HasQ reports whether any term of x carries a non-zero q exponent.
func (x *Polynomial) HasQ() bool {
	for w, _ := range x.m.All() {
		if w.HasQ() {
			return true
		}
	}
	return false
}

// PolynomialModular computes the remainder of x divided by g modulo the
// prime p, via repeated leading-term elimination. Both x and g must be
// univariate in x (no y, no q terms).
func (x *Polynomial) PolynomialModular(g *Polynomial, p *big.Int) (*Polynomial, error) {
	if x.HasY() || x.HasQ() || g.HasY() || g.HasQ() {
		return nil, errors.Wrap(ErrNotUnivariate, "PolynomialModular")
	}
	if g.IsZero() {
		return nil, errors.Wrap(bigint.ErrDomain, "PolynomialModular by zero polynomial")
	}
	self := x.Clone().ModularAssign(p)
	gLead := g.LeadingTerm()
	gDeg := gLead.Monomial.XExp
	for !self.IsZero() {
		h := self.HighestTermX()
		if h.Monomial.XExp < gDeg {
			break
		}
		lcInv, err := bigint.Inverse(gLead.Coefficient, p)
		if err != nil {
			return nil, errors.Wrap(err, "PolynomialModular inverting leading coefficient")
		}
		scale := new(big.Int).Mul(h.Coefficient, lcInv)
		shiftMono := Monomial{XExp: h.Monomial.XExp - gDeg}
		shiftPoly := NewPolynomial(NewTerm(scale, shiftMono)).Mul(g)
		self = self.Sub(shiftPoly).ModularAssign(p)
	}
	return self, nil
}

// GCD returns the monic greatest common divisor of x and g modulo the
// prime p, via the Euclidean algorithm using PolynomialModular.
func (x *Polynomial) GCD(g *Polynomial, p *big.Int) (*Polynomial, error) {
	a, err := x.ToMonicIfNonZero(p)
	if err != nil {
		return nil, err
	}
	b, err := g.ToMonicIfNonZero(p)
	if err != nil {
		return nil, err
	}
	for !b.IsZero() {
		r, err := a.PolynomialModular(b, p)
		if err != nil {
			return nil, err
		}
		a, b = b, r
		if !a.IsZero() {
			a, err = a.ToMonicIfNonZero(p)
			if err != nil {
				return nil, err
			}
		}
	}
	return a, nil
}

// IsGCDOne reports whether gcd(x, g, p) is the constant polynomial 1.
func (x *Polynomial) IsGCDOne(g *Polynomial, p *big.Int) (bool, error) {
	gcd, err := x.GCD(g, p)
	if err != nil {
		return false, err
	}
	if gcd.IsZero() {
		return false, nil
	}
	return gcd.Equal(One()), nil
}

// ToMonic returns x scaled so its leading coefficient is 1 modulo p.
func (x *Polynomial) ToMonic(p *big.Int) (*Polynomial, error) {
	if x.IsZero() {
		return x.Clone(), nil
	}
	lc := x.LeadingTerm().Coefficient
	inv, err := bigint.Inverse(lc, p)
	if err != nil {
		return nil, errors.Wrap(err, "ToMonic")
	}
	return x.MulScalar(inv).ModularAssign(p), nil
}

// ToMonicIfNonZero is ToMonic, but returns x unchanged when x is zero.
func (x *Polynomial) ToMonicIfNonZero(p *big.Int) (*Polynomial, error) {
	if x.IsZero() {
		return x.Clone(), nil
	}
	return x.ToMonic(p)
}

// Reduction replaces every y^(2q) factor by (x^3+a*x+b)^q over Z,
// bringing the y exponent of every term down to 0 or 1.
func (x *Polynomial) Reduction(a, b *big.Int) *Polynomial {
	rhs := curvePolynomial(a, b)
	z := Zero()
	for w, c := range x.m.All() {
		e := w.YExp
		q, r := e/2, e%2
		m := w
		m.YExp = r
		term := NewPolynomial(NewTerm(new(big.Int).Set(c), m))
		if q > 0 {
			term = term.Mul(rhs.Pow(q))
		}
		z = z.Add(term)
	}
	return z
}

// ReductionModular is Reduction, but every intermediate power of
// x^3+a*x+b is computed and reduced modulo p, and the final result is
// reduced modulo p.
func (x *Polynomial) ReductionModular(a, b, p *big.Int) (*Polynomial, error) {
	rhs := curvePolynomial(a, b)
	z := Zero()
	for w, c := range x.m.All() {
		e := w.YExp
		q, r := e/2, e%2
		m := w
		m.YExp = r
		term := NewPolynomial(NewTerm(new(big.Int).Set(c), m))
		if q > 0 {
			pw, err := rhs.PowerModulo(q, p)
			if err != nil {
				return nil, err
			}
			term = term.Mul(pw)
		}
		z = z.Add(term).ModularAssign(p)
	}
	return z, nil
}

// CurvePolynomial returns x^3+a*x+b, the right-hand side of y^2=x^3+ax+b.
func CurvePolynomial(a, b *big.Int) *Polynomial {
	return curvePolynomial(a, b)
}

func curvePolynomial(a, b *big.Int) *Polynomial {
	return NewPolynomial(
		NewTerm(big.NewInt(1), Monomial{XExp: 3}),
		NewTerm(new(big.Int).Set(a), Monomial{XExp: 1}),
		NewTerm(new(big.Int).Set(b), MonomialOne()),
	)
}

// EvalXY evaluates x at the given numeric x and y values, ignoring any
// variable or q factor (the caller ensures they are absent).
func (x *Polynomial) EvalXY(xv, yv *big.Int) *big.Int {
	r := big.NewInt(0)
	for w, c := range x.m.All() {
		t := Term{Coefficient: c, Monomial: w}
		r.Add(r, t.EvalXY(xv, yv))
	}
	return r
}

// EvalX substitutes a numeric value for x, leaving y and q symbolic.
func (x *Polynomial) EvalX(xv *big.Int) *Polynomial {
	z := Zero()
	for w, c := range x.m.All() {
		nc := new(big.Int).Mul(c, bigint.Power(xv, w.XExp))
		m := w
		m.XExp = 0
		z = z.Add(NewPolynomial(NewTerm(nc, m)))
	}
	return z
}

// EvalY substitutes a numeric value for y, leaving x and q symbolic.
func (x *Polynomial) EvalY(yv *big.Int) *Polynomial {
	z := Zero()
	for w, c := range x.m.All() {
		nc := new(big.Int).Mul(c, bigint.Power(yv, w.YExp))
		m := w
		m.YExp = 0
		z = z.Add(NewPolynomial(NewTerm(nc, m)))
	}
	return z
}

// EvalXPolynomial substitutes the polynomial p for x: each term's x
// exponent becomes a power of p, multiplied by the residual monomial.
func (x *Polynomial) EvalXPolynomial(p *Polynomial) *Polynomial {
	z := Zero()
	for w, c := range x.m.All() {
		m := w
		m.XExp = 0
		residual := NewPolynomial(NewTerm(new(big.Int).Set(c), m))
		term := residual.Mul(p.Pow(w.XExp))
		z = z.Add(term)
	}
	return z
}

// EvalYPolynomial substitutes the polynomial p for y.
func (x *Polynomial) EvalYPolynomial(p *Polynomial) *Polynomial {
	z := Zero()
	for w, c := range x.m.All() {
		m := w
		m.YExp = 0
		residual := NewPolynomial(NewTerm(new(big.Int).Set(c), m))
		term := residual.Mul(p.Pow(w.YExp))
		z = z.Add(term)
	}
	return z
}

// DerivativeX returns the formal derivative of x with respect to x.
func (x *Polynomial) DerivativeX() *Polynomial {
	z := Zero()
	for w, c := range x.m.All() {
		z.addTerm(1, Term{Coefficient: c, Monomial: w}.DerivativeX())
	}
	return z
}

// DerivativeY returns the formal derivative of x with respect to y.
func (x *Polynomial) DerivativeY() *Polynomial {
	z := Zero()
	for w, c := range x.m.All() {
		z.addTerm(1, Term{Coefficient: c, Monomial: w}.DerivativeY())
	}
	return z
}

// OmitHighOrderQ drops every monomial whose q exponent exceeds order.
// Precondition: x has no x or y terms (a pure q-series).
func (x *Polynomial) OmitHighOrderQ(order int64) *Polynomial {
	z := &Polynomial{m: omap.NewMapFunc[Monomial, *big.Int](MonomialOrder)}
	for w, c := range x.m.All() {
		if w.QExp <= order {
			z.m.Set(w, new(big.Int).Set(c))
		}
	}
	return z
}

// ToQPowerCoef restricts x to the sub-polynomial whose q exponent
// equals k, then strips the q factor; the result is a polynomial in
// the subscripted variables.
func (x *Polynomial) ToQPowerCoef(k int64) *Polynomial {
	z := Zero()
	for w, c := range x.m.All() {
		if w.QExp == k {
			m := w
			m.QExp = 0
			z = z.Add(NewPolynomial(NewTerm(new(big.Int).Set(c), m)))
		}
	}
	return z
}

// ToVariableCoef returns the integer coefficient of the given
// subscripted variable (0 if absent). Precondition: x is purely in
// subscripted variables (no x, y, or q factors other than the
// variable itself).
func (x *Polynomial) ToVariableCoef(v SubscriptedVariable) *big.Int {
	for w, c := range x.m.All() {
		if w.Variable.Equal(v) && w.XExp == 0 && w.YExp == 0 && w.QExp == 0 {
			return new(big.Int).Set(c)
		}
	}
	return big.NewInt(0)
}

// String renders x with the highest-order monomial first, " + "/" - "
// separators, and no leading "+".
func (x *Polynomial) String() string {
	if x.m.Len() == 0 {
		return "0"
	}
	var b strings.Builder
	first := true
	for i := x.m.Len() - 1; i >= 0; i-- {
		w, c := x.m.At(i)
		if first {
			if c.Sign() < 0 {
				b.WriteString("- ")
				writeTermBody(&b, new(big.Int).Neg(c), w)
			} else {
				writeTermBody(&b, c, w)
			}
			first = false
			continue
		}
		if c.Sign() < 0 {
			b.WriteString(" - ")
			writeTermBody(&b, new(big.Int).Neg(c), w)
		} else {
			b.WriteString(" + ")
			writeTermBody(&b, c, w)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func writeTermBody(b *strings.Builder, absCoef *big.Int, w Monomial) {
	ms := w.String()
	switch {
	case ms == "":
		b.WriteString(absCoef.String())
	case absCoef.Cmp(big.NewInt(1)) == 0:
		b.WriteString(ms)
	default:
		b.WriteString(absCoef.String())
		b.WriteString(" ")
		b.WriteString(ms)
	}
}
