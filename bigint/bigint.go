// Package bigint extends [math/big.Int] with the fast powering, modular
// inverse, extended GCD and Chinese Remainder helpers the rest of this
// module builds on.
package bigint

import (
	"math/big"

	"github.com/pkg/errors"
)

// ErrDomain reports an invalid parameter to a modular operation, such as a
// modulus less than 2.
var ErrDomain = errors.New("bigint: domain error")

// Power returns a^n. It panics if n is negative.
func Power(a *big.Int, n int64) *big.Int {
	if n < 0 {
		panic("bigint: negative exponent")
	}
	z := big.NewInt(1)
	base := new(big.Int).Set(a)
	for n > 0 {
		if n&1 == 1 {
			z.Mul(z, base)
		}
		base.Mul(base, base)
		n >>= 1
	}
	return z
}

// PowerModulo returns a^n mod p, reducing modulo p after every
// multiplication so intermediate values stay small. It panics if n is
// negative.
func PowerModulo(a *big.Int, n int64, p *big.Int) (*big.Int, error) {
	if p.Cmp(big.NewInt(1)) <= 0 {
		return nil, errors.Wrapf(ErrDomain, "modulus %s must be > 1", p)
	}
	if n < 0 {
		panic("bigint: negative exponent")
	}
	z := big.NewInt(1)
	base := ModFloor(a, p)
	for n > 0 {
		if n&1 == 1 {
			z.Mul(z, base)
			z.Mod(z, p)
		}
		base.Mul(base, base)
		base.Mod(base, p)
		n >>= 1
	}
	return z, nil
}

// Inverse returns a⁻¹ mod p using Fermat's little theorem: a^(p-2) mod p.
// It requires p to be prime; the caller is responsible for that invariant.
func Inverse(a, p *big.Int) (*big.Int, error) {
	if p.Cmp(big.NewInt(2)) < 0 {
		return nil, errors.Wrapf(ErrDomain, "modulus %s must be >= 2", p)
	}
	am := ModFloor(a, p)
	if am.Sign() == 0 {
		return nil, errors.New("bigint: inverse of zero")
	}
	pMinus2 := new(big.Int).Sub(p, big.NewInt(2))
	return PowerModulo(am, pMinus2.Int64(), p)
}

// ExtendedGCD returns (g, x, y) such that g = a*x + b*y, with g = gcd(a, b).
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	if a.Sign() == 0 {
		return new(big.Int).Set(b), big.NewInt(0), big.NewInt(1)
	}
	q := new(big.Int)
	r := new(big.Int)
	q.DivMod(b, a, r)
	g1, x1, y1 := ExtendedGCD(r, a)
	// x = y1 - q*x1, y = x1
	x = new(big.Int).Sub(y1, new(big.Int).Mul(q, x1))
	return g1, x, new(big.Int).Set(x1)
}

// ModResult pairs a modulus l with a residue r, 0 <= r < l.
type ModResult struct {
	L *big.Int
	R *big.Int
}

// ChineseRemainder folds a list of pairwise-coprime (l_k, r_k) results into
// a single (L, R) with L = product of l_k and R ≡ r_k (mod l_k) for every k.
func ChineseRemainder(list []ModResult) ModResult {
	L := big.NewInt(1)
	R := big.NewInt(0)
	for _, kr := range list {
		_, p, _ := ExtendedGCD(L, kr.L)
		diff := new(big.Int).Sub(kr.R, R)
		diff.Mod(diff, kr.L)
		delta := new(big.Int).Mul(diff, L)
		delta.Mul(delta, p)
		R.Add(R, delta)
		L.Mul(L, kr.L)
		R.Mod(R, L)
	}
	return ModResult{L: L, R: R}
}

// DivFloor returns the Euclidean quotient of a/b, i.e. the unique q with
// a = b*q + m and 0 <= m < |b|.
func DivFloor(a, b *big.Int) *big.Int {
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(a, b, m)
	return q
}

// ModFloor returns the Euclidean remainder of a/b: the unique m with
// 0 <= m < |b| and a = b*q + m for some integer q.
func ModFloor(a, b *big.Int) *big.Int {
	m := new(big.Int)
	new(big.Int).DivMod(a, b, m)
	return m
}
