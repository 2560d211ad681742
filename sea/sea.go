// Package sea implements the support machinery for the
// Schoof-Elkies-Atkin extension: construction of the modular polynomial
// Φ_ℓ(X,Y) characterising ℓ-isogenous j-invariants, and the
// Elkies/Atkin classification of a prime ℓ for a given curve.
package sea

import (
	"math/big"

	ec "github.com/pebble8888/ellipticcurve"
	"github.com/pebble8888/ellipticcurve/curve"
	"github.com/pebble8888/ellipticcurve/qexpand"
	"github.com/pebble8888/ellipticcurve/solver"
)

// Kind classifies a prime ℓ for a given curve.
type Kind string

const (
	Elkies Kind = "elkies"
	Atkin  Kind = "atkin"
)

// ModularPolynomialTemplate returns the symbolic template
// X^(ℓ+1) + Y^(ℓ+1) + sum_{0<=i<=ℓ} c_{i,i} X^i Y^i
// + sum_{0<=i<j<=ℓ} c_{i,j}(X^i Y^j + X^j Y^i), whose subscripted
// coefficients Φ_ℓ satisfies.
func ModularPolynomialTemplate(ell int64) *ec.Polynomial {
	pol := ec.NewPolynomial(ec.NewTerm(big.NewInt(1), ec.Monomial{XExp: ell + 1}))
	pol = pol.Add(ec.NewPolynomial(ec.NewTerm(big.NewInt(1), ec.Monomial{YExp: ell + 1})))
	for i := int64(0); i <= ell; i++ {
		v := ec.NewSubscriptedVariable(i, i)
		pol = pol.Add(ec.NewPolynomial(ec.NewTerm(big.NewInt(1), ec.Monomial{XExp: i, YExp: i, Variable: v})))
	}
	for i := int64(0); i <= ell; i++ {
		for j := i + 1; j <= ell; j++ {
			v := ec.NewSubscriptedVariable(i, j)
			pol = pol.Add(ec.NewPolynomial(ec.NewTerm(big.NewInt(1), ec.Monomial{XExp: i, YExp: j, Variable: v})))
			pol = pol.Add(ec.NewPolynomial(ec.NewTerm(big.NewInt(1), ec.Monomial{XExp: j, YExp: i, Variable: v})))
		}
	}
	return pol
}

// qExpansion substitutes X := j(τ), Y := j(ℓτ) into the template, then
// discards every positive power of q: only terms of order <= q^0 are
// needed to recover the c_{i,j} via linear algebra.
func qExpansion(ell int64) *ec.Polynomial {
	tmpl := ModularPolynomialTemplate(ell)
	jOrder := ell*ell + ell
	j := qexpand.JInvariant(jOrder)
	jScaled := j.ToQPower(ell)
	pol1 := tmpl.EvalXPolynomial(j)
	pol2 := pol1.EvalYPolynomial(jScaled)
	return pol2.OmitHighOrderQ(0)
}

// CoefficientList returns, for each q power k in [-(ℓ²+ℓ), 0], the
// polynomial in the c_{i,j} that must vanish identically for the
// substitution to hold: one linear equation per q order.
func CoefficientList(ell int64) []*ec.Polynomial {
	polQ := qExpansion(ell)
	min := -(ell*ell + ell)
	list := make([]*ec.Polynomial, 0, -min+1)
	for k := min; k <= 0; k++ {
		list = append(list, polQ.ToQPowerCoef(k))
	}
	return list
}

// ModularPolynomial returns the classical modular polynomial Φ_ℓ(X,Y)
// over Z, recovered by solving the linear system the q-expansion
// identity imposes on its c_{i,j} coefficients. It panics if that
// system turns out unsolvable, since for every ℓ this construction is
// known to produce a well-posed system; a caller seeing
// solver.ErrUnsolvable here has found a genuine defect in the
// q-expansion truncation order, not a recoverable runtime condition.
func ModularPolynomial(ell int64) *ec.Polynomial {
	list := CoefficientList(ell)
	converter := ec.NewSubscriptedVariableConverter(ell)
	rowCount := len(list)
	colCount := int(converter.Count()) + 1

	matrix := make([][]*big.Int, rowCount)
	for r := 0; r < rowCount; r++ {
		matrix[r] = make([]*big.Int, colCount)
		for c := 0; c < colCount-1; c++ {
			v := converter.VariableFromIndex(int64(c))
			matrix[r][c] = list[r].ToVariableCoef(v)
		}
		matrix[r][colCount-1] = list[r].ToVariableCoef(ec.EmptyVariable())
	}
	solved, err := solver.Solve(matrix)
	if err != nil {
		panic(err)
	}

	pol := ec.Zero()
	for i := 0; i < colCount-1; i++ {
		v := converter.VariableFromIndex(int64(i))
		val := new(big.Int).Neg(solved[i][colCount-1])
		pol = pol.Add(ec.NewPolynomial(ec.NewTerm(new(big.Int).Set(val), ec.Monomial{XExp: v.I, YExp: v.J})))
		if v.I != v.J {
			pol = pol.Add(ec.NewPolynomial(ec.NewTerm(new(big.Int).Set(val), ec.Monomial{XExp: v.J, YExp: v.I})))
		}
	}
	pol = pol.Add(ec.NewPolynomial(ec.NewTerm(big.NewInt(1), ec.Monomial{XExp: ell + 1})))
	pol = pol.Add(ec.NewPolynomial(ec.NewTerm(big.NewInt(1), ec.Monomial{YExp: ell + 1})))
	return pol
}

// Classify evaluates Φ_ℓ(X, j(E)) mod p and takes its gcd with X^p-X to
// determine whether ℓ is an Elkies or Atkin prime for the curve (a,b)
// over F_p: the gcd's degree is 0 for an Atkin prime, and 1, 2 or ℓ+1
// for an Elkies prime (the degree of the X-factor fixed by Frobenius).
func Classify(a, b, p *big.Int, ell int64) (Kind, *ec.Polynomial, error) {
	mpol := ModularPolynomial(ell).Modulo(p)
	j := curve.New(a, b, p).JInvariant()
	mpolAtJ := mpol.EvalY(j).Modulo(p)

	xP := ec.NewPolynomial(ec.NewTerm(big.NewInt(1), ec.Monomial{XExp: p.Int64()}))
	x1 := ec.NewPolynomial(ec.NewTerm(big.NewInt(1), ec.Monomial{XExp: 1}))
	gcd, err := xP.Sub(x1).GCD(mpolAtJ, p)
	if err != nil {
		return "", nil, err
	}

	var degree int64
	if !gcd.Equal(ec.One()) && !gcd.IsZero() {
		degree = gcd.LeadingTerm().Monomial.XExp
	}
	kind := Atkin
	if degree == 1 || degree == 2 || degree == ell+1 {
		kind = Elkies
	}
	return kind, gcd, nil
}

// IsogenousJInvariants returns the roots in F_p of gcd, the x-factor
// Classify isolates: the j-invariants of the curves ℓ-isogenous to E.
// Root-finding is brute force over [0, p), matching curve's own
// small-prime point enumeration rather than a general root-finder.
func IsogenousJInvariants(gcd *ec.Polynomial, p *big.Int) []*big.Int {
	var roots []*big.Int
	for x := big.NewInt(0); x.Cmp(p) < 0; x = new(big.Int).Add(x, big.NewInt(1)) {
		v := gcd.EvalXY(x, big.NewInt(0))
		v.Mod(v, p)
		if v.Sign() == 0 {
			roots = append(roots, new(big.Int).Set(x))
		}
	}
	return roots
}
