// Package curve implements elliptic curves E: y²=x³+ax+b over a prime
// field F_p: point enumeration, affine addition, scalar multiplication,
// point order, division points and the j-invariant.
package curve

import (
	"fmt"
	"math/big"

	"github.com/pebble8888/ellipticcurve/bigint"
)

// Point is an elliptic-curve point in (x, y, z) form: z = 0 denotes the
// point at infinity O, z = 1 an affine point (x, y). Equal compares
// the affine coordinates as stored; it does not reduce them modulo p,
// so (x, y) and (x+p, y) compare unequal.
type Point struct {
	X, Y *big.Int
	Z    int
}

// Infinity returns the point at infinity, O.
func Infinity() Point {
	return Point{X: big.NewInt(0), Y: big.NewInt(0), Z: 0}
}

// NewPoint returns the affine point (x, y).
func NewPoint(x, y *big.Int) Point {
	return Point{X: new(big.Int).Set(x), Y: new(big.Int).Set(y), Z: 1}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool { return p.Z == 0 }

// Equal reports whether p and q denote the same point.
func (p Point) Equal(q Point) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() == q.IsInfinity()
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// String renders p as "(x, y)", or "O" for the point at infinity.
func (p Point) String() string {
	if p.IsInfinity() {
		return "O"
	}
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

// Curve is the elliptic curve y²=x³+ax+b over F_p.
type Curve struct {
	A, B, P *big.Int

	points []Point
}

// New returns the curve y²=x³+ax+b over F_p. It panics if p is not
// prime, matching the precondition the Schoof driver and division
// polynomials rely on (Fermat inversion is sound only for prime
// moduli).
func New(a, b, p *big.Int) *Curve {
	if p.Cmp(big.NewInt(2)) < 0 || !p.ProbablyPrime(20) {
		panic("curve: p must be prime")
	}
	return &Curve{A: new(big.Int).Set(a), B: new(big.Int).Set(b), P: new(big.Int).Set(p)}
}

// rhs returns x³+ax+b mod p.
func (c *Curve) rhs(x *big.Int) *big.Int {
	x3 := new(big.Int).Exp(x, big.NewInt(3), c.P)
	ax := new(big.Int).Mul(c.A, x)
	r := new(big.Int).Add(x3, ax)
	r.Add(r, c.B)
	return bigint.ModFloor(r, c.P)
}

// IsOnCurve reports whether P satisfies y²=x³+ax+b (mod p). The point
// at infinity is trivially on the curve.
func (c *Curve) IsOnCurve(pt Point) bool {
	if pt.IsInfinity() {
		return true
	}
	y2 := bigint.ModFloor(new(big.Int).Mul(pt.Y, pt.Y), c.P)
	return y2.Cmp(c.rhs(pt.X)) == 0
}

// Points enumerates the rational points of the curve by scanning
// x in [0, p) and, for each root of y²=rhs(x), recording both y and
// p-y (unless y=0). The point at infinity is appended last. Intended
// for small p only.
func (c *Curve) Points() []Point {
	if c.points != nil {
		return c.points
	}
	var pts []Point
	for x := big.NewInt(0); x.Cmp(c.P) < 0; x = new(big.Int).Add(x, big.NewInt(1)) {
		r := c.rhs(x)
		y, ok := sqrtModPrime(r, c.P)
		if !ok {
			continue
		}
		pts = append(pts, NewPoint(x, y))
		negY := bigint.ModFloor(new(big.Int).Neg(y), c.P)
		if negY.Cmp(y) != 0 {
			pts = append(pts, NewPoint(x, negY))
		}
	}
	pts = append(pts, Infinity())
	c.points = pts
	return pts
}

// sqrtModPrime returns a square root of a modulo the prime p, by
// exhaustive search. This module targets the small primes used in
// worked examples and tests, not cryptographic-size fields, so a
// Tonelli-Shanks implementation is unnecessary.
func sqrtModPrime(a, p *big.Int) (*big.Int, bool) {
	for y := big.NewInt(0); y.Cmp(p) < 0; y = new(big.Int).Add(y, big.NewInt(1)) {
		y2 := bigint.ModFloor(new(big.Int).Mul(y, y), p)
		if y2.Cmp(a) == 0 {
			return y, true
		}
	}
	return nil, false
}

// Plus returns P+Q using the classical affine addition formulas.
func (c *Curve) Plus(p, q Point) Point {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}
	if p.X.Cmp(q.X) == 0 {
		ySum := bigint.ModFloor(new(big.Int).Add(p.Y, q.Y), c.P)
		if ySum.Sign() == 0 {
			return Infinity()
		}
		// Doubling: slope = (3x²+a) / (2y).
		num := new(big.Int).Mul(big.NewInt(3), new(big.Int).Mul(p.X, p.X))
		num.Add(num, c.A)
		den := new(big.Int).Mul(big.NewInt(2), p.Y)
		denInv, err := bigint.Inverse(den, c.P)
		if err != nil {
			panic(err)
		}
		slope := bigint.ModFloor(new(big.Int).Mul(num, denInv), c.P)
		return c.fromSlope(p, q, slope)
	}

	num := new(big.Int).Sub(q.Y, p.Y)
	den := new(big.Int).Sub(q.X, p.X)
	denInv, err := bigint.Inverse(den, c.P)
	if err != nil {
		panic(err)
	}
	slope := bigint.ModFloor(new(big.Int).Mul(num, denInv), c.P)
	return c.fromSlope(p, q, slope)
}

func (c *Curve) fromSlope(p, q Point, slope *big.Int) Point {
	x3 := new(big.Int).Mul(slope, slope)
	x3.Sub(x3, p.X)
	x3.Sub(x3, q.X)
	x3 = bigint.ModFloor(x3, c.P)
	y3 := new(big.Int).Sub(p.X, x3)
	y3.Mul(y3, slope)
	y3.Sub(y3, p.Y)
	y3 = bigint.ModFloor(y3, c.P)
	return NewPoint(x3, y3)
}

// Negate returns -P.
func (c *Curve) Negate(p Point) Point {
	if p.IsInfinity() {
		return p
	}
	return NewPoint(p.X, bigint.ModFloor(new(big.Int).Neg(p.Y), c.P))
}

// MultiplyScalar returns [n]P via double-and-add.
func (c *Curve) MultiplyScalar(p Point, n *big.Int) Point {
	if n.Sign() == 0 {
		return Infinity()
	}
	if n.Sign() < 0 {
		return c.MultiplyScalar(c.Negate(p), new(big.Int).Neg(n))
	}
	result := Infinity()
	base := p
	nn := new(big.Int).Set(n)
	zero := big.NewInt(0)
	for nn.Cmp(zero) > 0 {
		bit := new(big.Int).And(nn, big.NewInt(1))
		if bit.Sign() != 0 {
			result = c.Plus(result, base)
		}
		base = c.Plus(base, base)
		nn = new(big.Int).Rsh(nn, 1)
	}
	return result
}

// PointOrder returns the minimal positive k with [k]P = O, by
// successive addition.
func (c *Curve) PointOrder(p Point) *big.Int {
	if p.IsInfinity() {
		return big.NewInt(1)
	}
	k := big.NewInt(1)
	cur := p
	for !cur.IsInfinity() {
		cur = c.Plus(cur, p)
		k.Add(k, big.NewInt(1))
	}
	return k
}

// DivisionPoints returns the rational points P with [k]P = O.
func (c *Curve) DivisionPoints(k *big.Int) []Point {
	var result []Point
	for _, p := range c.Points() {
		if c.MultiplyScalar(p, k).IsInfinity() {
			result = append(result, p)
		}
	}
	return result
}

// JInvariant returns the j-invariant 1728 * 4a³ * (4a³+27b²)⁻¹ mod p.
func (c *Curve) JInvariant() *big.Int {
	a3 := new(big.Int).Exp(c.A, big.NewInt(3), nil)
	num := new(big.Int).Mul(big.NewInt(4), a3)
	b2 := new(big.Int).Mul(c.B, c.B)
	denTerm := new(big.Int).Mul(big.NewInt(27), b2)
	den := new(big.Int).Add(num, denTerm)
	den = bigint.ModFloor(den, c.P)
	denInv, err := bigint.Inverse(den, c.P)
	if err != nil {
		panic(err)
	}
	j := new(big.Int).Mul(big.NewInt(1728), bigint.ModFloor(num, c.P))
	j.Mul(j, denInv)
	return bigint.ModFloor(j, c.P)
}
