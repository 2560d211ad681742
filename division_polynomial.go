package ellipticcurve

import "math/big"

// DivisionPolynomials memoises ψ_n, φ_n, ω_n for a fixed curve (a, b):
// the recurrence fans out exponentially without a cache, so each
// instance should be scoped to a single computation (e.g. one Schoof
// call) rather than shared across curves.
type DivisionPolynomials struct {
	A, B  *big.Int
	psi   map[int64]*Polynomial
	phi   map[int64]*Polynomial
	omega map[int64]*Polynomial
}

// NewDivisionPolynomials returns a fresh, empty cache for curve (a, b).
func NewDivisionPolynomials(a, b *big.Int) *DivisionPolynomials {
	return &DivisionPolynomials{
		A:     new(big.Int).Set(a),
		B:     new(big.Int).Set(b),
		psi:   make(map[int64]*Polynomial),
		phi:   make(map[int64]*Polynomial),
		omega: make(map[int64]*Polynomial),
	}
}

// Psi returns ψ_n for n >= 0.
func (d *DivisionPolynomials) Psi(n int64) *Polynomial {
	if n < 0 {
		panic("ellipticcurve: negative division polynomial index")
	}
	if p, ok := d.psi[n]; ok {
		return p
	}
	p := d.computePsi(n)
	d.psi[n] = p
	return p
}

func (d *DivisionPolynomials) computePsi(n int64) *Polynomial {
	a, b := d.A, d.B
	switch n {
	case 0:
		return Zero()
	case 1:
		return One()
	case 2:
		return NewPolynomial(NewTerm(big.NewInt(2), Monomial{YExp: 1}))
	case 3:
		return NewPolynomial(
			NewTerm(big.NewInt(3), Monomial{XExp: 4}),
			NewTerm(new(big.Int).Mul(big.NewInt(6), a), Monomial{XExp: 2}),
			NewTerm(new(big.Int).Mul(big.NewInt(12), b), Monomial{XExp: 1}),
			NewTerm(new(big.Int).Neg(new(big.Int).Mul(a, a)), MonomialOne()),
		)
	case 4:
		a2 := new(big.Int).Mul(a, a)
		a3 := new(big.Int).Mul(a2, a)
		b2 := new(big.Int).Mul(b, b)
		inner := NewPolynomial(
			NewTerm(big.NewInt(1), Monomial{XExp: 6}),
			NewTerm(new(big.Int).Mul(big.NewInt(5), a), Monomial{XExp: 4}),
			NewTerm(new(big.Int).Mul(big.NewInt(20), b), Monomial{XExp: 3}),
			NewTerm(new(big.Int).Neg(new(big.Int).Mul(big.NewInt(5), a2)), Monomial{XExp: 2}),
			NewTerm(new(big.Int).Neg(new(big.Int).Mul(big.NewInt(4), new(big.Int).Mul(a, b))), Monomial{XExp: 1}),
			NewTerm(new(big.Int).Neg(new(big.Int).Add(new(big.Int).Mul(big.NewInt(8), b2), a3)), MonomialOne()),
		)
		fourY := NewPolynomial(NewTerm(big.NewInt(4), Monomial{YExp: 1}))
		return fourY.Mul(inner).Reduction(a, b)
	}

	if n%2 == 1 {
		m := (n - 1) / 2
		left := d.Psi(m + 2).Mul(d.Psi(m).Pow(3))
		right := d.Psi(m - 1).Mul(d.Psi(m + 1).Pow(3))
		return left.Sub(right).Reduction(a, b)
	}

	m := n / 2
	twoY := NewPolynomial(NewTerm(big.NewInt(2), Monomial{YExp: 1}))
	inner := d.Psi(m + 2).Mul(d.Psi(m - 1).Pow(2)).Sub(d.Psi(m - 2).Mul(d.Psi(m + 1).Pow(2)))
	num := d.Psi(m).Mul(inner)
	quot, err := num.DivMonomial(twoY)
	if err != nil {
		panic(err)
	}
	return quot.Reduction(a, b)
}

// Phi returns φ_n for n >= 1. For n = 0 it panics, since the formula
// needs ψ_{n-1}.
func (d *DivisionPolynomials) Phi(n int64) *Polynomial {
	if p, ok := d.phi[n]; ok {
		return p
	}
	x := NewPolynomial(NewTerm(big.NewInt(1), Monomial{XExp: 1}))
	p := x.Mul(d.Psi(n).Pow(2)).Sub(d.Psi(n + 1).Mul(d.Psi(n - 1))).Reduction(d.A, d.B)
	d.phi[n] = p
	return p
}

// Omega returns ω_n for n >= 1.
func (d *DivisionPolynomials) Omega(n int64) *Polynomial {
	if p, ok := d.omega[n]; ok {
		return p
	}
	var p *Polynomial
	if n == 1 {
		p = NewPolynomial(NewTerm(big.NewInt(1), Monomial{YExp: 1}))
	} else {
		fourY := NewPolynomial(NewTerm(big.NewInt(4), Monomial{YExp: 1}))
		num := d.Psi(n+2).Mul(d.Psi(n-1).Pow(2)).Sub(d.Psi(n-2).Mul(d.Psi(n+1).Pow(2)))
		quot, err := num.DivMonomial(fourY)
		if err != nil {
			panic(err)
		}
		p = quot.Reduction(d.A, d.B)
	}
	d.omega[n] = p
	return p
}
