// Package schoof computes the trace of Frobenius, and hence the order,
// of an elliptic curve y²=x³+ax+b over a prime field F_p, by combining
// the trace modulo each of a set of small primes ℓ (via comparisons
// built from the division polynomials) with the Chinese Remainder
// Theorem.
package schoof

import (
	"math/big"

	"github.com/pkg/errors"

	ec "github.com/pebble8888/ellipticcurve"
	"github.com/pebble8888/ellipticcurve/bigint"
)

// ErrPrimeTooSmall reports that p is too small for the algorithm's
// degenerate l=2 and l=3 steps to make sense.
var ErrPrimeTooSmall = errors.New("schoof: p must be at least 5")

// SmallPrimes returns the odd primes 3, 5, 7, ... whose product, times
// the modulus 2 contributed by the l=2 step, first exceeds 4*sqrt(p).
// By Hasse's bound |t| < 2*sqrt(p), so the trace is uniquely determined
// modulo that product.
func SmallPrimes(p *big.Int) []int64 {
	// product > 4*sqrt(p) exactly when product² > 16*p.
	bound := new(big.Int).Mul(p, big.NewInt(16))

	product := big.NewInt(2)
	var primes []int64
	for candidate := int64(3); new(big.Int).Mul(product, product).Cmp(bound) <= 0; candidate += 2 {
		c := big.NewInt(candidate)
		if c.Cmp(p) >= 0 {
			break
		}
		if c.ProbablyPrime(20) {
			primes = append(primes, candidate)
			product.Mul(product, c)
		}
	}
	return primes
}

// Schoof returns the trace of Frobenius modulo each small prime ℓ, the
// first entry always being modulo 2.
func Schoof(a, b, p *big.Int) ([]bigint.ModResult, error) {
	if p.Cmp(big.NewInt(5)) < 0 {
		return nil, errors.Wrapf(ErrPrimeTooSmall, "p=%s", p)
	}

	var results []bigint.ModResult

	f := ec.CurvePolynomial(a, b)
	pInt := p.Int64()
	xP := ec.NewPolynomial(ec.NewTerm(big.NewInt(1), ec.Monomial{XExp: pInt}))
	x1 := ec.NewPolynomial(ec.NewTerm(big.NewInt(1), ec.Monomial{XExp: 1}))
	gcdOne, err := f.IsGCDOne(xP.Sub(x1), p)
	if err != nil {
		return nil, errors.Wrap(err, "l=2")
	}
	t2 := big.NewInt(0)
	if gcdOne {
		t2 = big.NewInt(1)
	}
	results = append(results, bigint.ModResult{L: big.NewInt(2), R: t2})

	dp := ec.NewDivisionPolynomials(a, b)
	for _, l := range SmallPrimes(p) {
		tl, err := traceModL(dp, a, b, p, l)
		if err != nil {
			return nil, errors.Wrapf(err, "l=%d", l)
		}
		results = append(results, bigint.ModResult{L: big.NewInt(l), R: big.NewInt(tl)})
	}
	return results, nil
}

// TraceOfFrobenius returns t with p+1-t equal to the curve's order,
// recovered via CRT over the per-prime results and centred into
// (-L/2, L/2], where L is the product of the moduli.
func TraceOfFrobenius(a, b, p *big.Int) (*big.Int, error) {
	results, err := Schoof(a, b, p)
	if err != nil {
		return nil, err
	}
	combined := bigint.ChineseRemainder(results)
	t := new(big.Int).Set(combined.R)
	half := new(big.Int).Rsh(combined.L, 1)
	if t.Cmp(half) > 0 {
		t.Sub(t, combined.L)
	}
	return t, nil
}

// CurveOrder returns #E(F_p) = p+1-t.
func CurveOrder(a, b, p *big.Int) (*big.Int, error) {
	t, err := TraceOfFrobenius(a, b, p)
	if err != nil {
		return nil, err
	}
	order := new(big.Int).Add(p, big.NewInt(1))
	order.Sub(order, t)
	return order, nil
}

// traceModL computes t mod l for an odd prime l, following steps (b),
// (c), (iii), (d), (e) of Schoof's algorithm: build the Frobenius
// comparison polynomial from the division polynomials, search for the
// matching j in [1, (l-1)/2], and recover the sign from the y-coordinate
// comparison.
func traceModL(dp *ec.DivisionPolynomials, a, b, p *big.Int, l int64) (int64, error) {
	ql := bigint.ModFloor(p, big.NewInt(l)).Int64()
	jmax := (l - 1) / 2

	pSq := new(big.Int).Mul(p, p).Int64()
	xP2 := ec.NewPolynomial(ec.NewTerm(big.NewInt(1), ec.Monomial{XExp: pSq}))
	yP2 := ec.NewPolynomial(ec.NewTerm(big.NewInt(1), ec.Monomial{YExp: pSq}))

	psiQl := dp.Psi(ql)
	phiQl := dp.Phi(ql)
	omegaQl := dp.Omega(ql)

	nn1, err := omegaQl.ReductionModular(a, b, p)
	if err != nil {
		return 0, err
	}
	nn2, err := yP2.Mul(psiQl.Pow(3)).ReductionModular(a, b, p)
	if err != nil {
		return 0, err
	}
	n1 := nn1.Sub(nn2).Pow(2).Modulo(p)

	xp2Psi2 := xP2.Mul(psiQl.Pow(2))
	n2 := phiQl.Add(xp2Psi2).Neg()
	n3Base := phiQl.Sub(xp2Psi2)
	n3 := n3Base.Pow(2)

	num1, err := n1.Add(n2.Mul(n3)).Modulo(p).ReductionModular(a, b, p)
	if err != nil {
		return 0, err
	}
	den1, err := psiQl.Pow(2).Mul(n3).ReductionModular(a, b, p)
	if err != nil {
		return 0, err
	}

	psiL := dp.Psi(l).Modulo(p)

	found := false
	var jj int64
	for j := int64(1); j <= jmax; j++ {
		num2, err := dp.Phi(j).ToFrob(pInt64(p)).ReductionModular(a, b, p)
		if err != nil {
			return 0, err
		}
		den2 := dp.Psi(j).ToFrob(pInt64(p)).Pow(2)

		p1, err := num1.Mul(den2).Sub(num2.Mul(den1)).Modulo(p).ReductionModular(a, b, p)
		if err != nil {
			return 0, err
		}
		p1, err = p1.PolynomialModular(psiL, p)
		if err != nil {
			return 0, err
		}
		p1 = p1.Modulo(p)

		if p1.IsZero() {
			found = true
			jj = j
			break
		}
	}

	if found {
		return traceSign(dp, a, b, p, l, ql, jj, xP2, yP2, psiQl, phiQl, omegaQl, psiL)
	}
	return traceNoX(dp, a, b, p, l, ql, psiL)
}

// traceSign implements step (iii): with x matched at j=jj, compare the
// y-coordinates to recover the sign and return t mod l = ±jj.
func traceSign(dp *ec.DivisionPolynomials, a, b, p *big.Int, l, ql, jj int64, xP2, yP2, psiQl, phiQl, omegaQl, psiL *ec.Polynomial) (int64, error) {
	g, err := yP2.ReductionModular(a, b, p)
	if err != nil {
		return 0, err
	}
	omg := omegaQl.Modulo(p)
	d, err := omg.Sub(g.Mul(psiQl.Pow(3))).ReductionModular(a, b, p)
	if err != nil {
		return 0, err
	}

	two := big.NewInt(2)
	e, err := phiQl.Neg().Add(xP2.MulScalar(two).Mul(psiQl.Pow(2))).Modulo(p).ReductionModular(a, b, p)
	if err != nil {
		return 0, err
	}
	f, err := phiQl.Sub(xP2.Mul(psiQl.Pow(2))).Modulo(p).ReductionModular(a, b, p)
	if err != nil {
		return 0, err
	}

	num3, err := d.Mul(e.Mul(f.Pow(2)).Sub(d.Pow(2))).Sub(g.Mul(psiQl.Pow(3)).Mul(f.Pow(3))).ReductionModular(a, b, p)
	if err != nil {
		return 0, err
	}
	num3, err = num3.Mul(psiQl).ReductionModular(a, b, p)
	if err != nil {
		return 0, err
	}
	den3, err := psiQl.Pow(3).Mul(f.Pow(3)).Mul(psiQl).ReductionModular(a, b, p)
	if err != nil {
		return 0, err
	}

	num4, err := dp.Omega(jj).ToFrob(pInt64(p)).ReductionModular(a, b, p)
	if err != nil {
		return 0, err
	}
	den4, err := dp.Psi(jj).ToFrob(pInt64(p)).Pow(3).ReductionModular(a, b, p)
	if err != nil {
		return 0, err
	}

	p7 := num3.Mul(den4).Sub(num4.Mul(den3)).Modulo(p)
	p8, err := p7.ReductionModular(a, b, p)
	if err != nil {
		return 0, err
	}

	var p9 *ec.Polynomial
	if p8.HasY() {
		yMono := ec.NewPolynomial(ec.NewTerm(big.NewInt(1), ec.Monomial{YExp: 1}))
		p9, err = p8.DivMonomial(yMono)
		if err != nil {
			return 0, err
		}
	} else {
		p9 = p8.Clone()
	}
	p9 = p9.Modulo(p)
	p9, err = p9.PolynomialModular(psiL, p)
	if err != nil {
		return 0, err
	}

	if !p9.IsZero() {
		jj = -jj
	}
	if jj < 0 {
		jj += l
	}
	return jj, nil
}

// traceNoX implements steps (d)/(e): no matching j was found, so t mod l
// is 0 when p mod l has no square root w mod l or the x-check fails, and
// otherwise ±2w, with the sign taken from a gcd test against the division
// polynomial of index l.
func traceNoX(dp *ec.DivisionPolynomials, a, b, p *big.Int, l, ql int64, psiL *ec.Polynomial) (int64, error) {
	foundW := false
	var w int64
	for i := int64(1); i < l; i++ {
		if (i*i)%l == ql {
			foundW = true
			w = i
			break
		}
	}
	if !foundW {
		return 0, nil
	}

	xP := ec.NewPolynomial(ec.NewTerm(big.NewInt(1), ec.Monomial{XExp: pInt64(p)}))
	p13, err := xP.Mul(dp.Psi(w).Pow(2)).Sub(dp.Phi(w)).Modulo(p).ReductionModular(a, b, p)
	if err != nil {
		return 0, err
	}
	p15, err := p13.PolynomialModular(psiL, p)
	if err != nil {
		return 0, err
	}
	if !p15.IsZero() {
		return 0, nil
	}

	yA := ec.NewPolynomial(ec.NewTerm(big.NewInt(1), ec.Monomial{YExp: a.Int64()}))
	yMono := ec.NewPolynomial(ec.NewTerm(big.NewInt(1), ec.Monomial{YExp: 1}))
	p16Raw, err := yA.Mul(dp.Psi(w).Pow(3)).Sub(dp.Omega(w)).DivMonomial(yMono)
	if err != nil {
		return 0, err
	}
	p17, err := p16Raw.Modulo(p).ReductionModular(a, b, p)
	if err != nil {
		return 0, err
	}

	gcdOne, err := p17.IsGCDOne(psiL, p)
	if err != nil {
		return 0, err
	}
	ww := 2 * w
	if gcdOne {
		ww = -2 * w
	}
	if ww < 0 {
		ww += l
	}
	return ww, nil
}

func pInt64(p *big.Int) int64 { return p.Int64() }
