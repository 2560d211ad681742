// Package qexpand builds truncated q-expansions of modular forms: the
// divisor-sum function, the weight-4 Eisenstein series E4, the
// discriminant Delta (and its inverse), and the j-invariant.
package qexpand

import (
	"math/big"

	ec "github.com/pebble8888/ellipticcurve"
	"github.com/pebble8888/ellipticcurve/bigint"
)

// SigmaDivisor returns sigma_power(n), the sum over positive divisors d
// of n of d^power.
func SigmaDivisor(n, power int64) *big.Int {
	if power < 0 || n < 0 {
		return big.NewInt(0)
	}
	sum := big.NewInt(0)
	for i := int64(1); i <= n; i++ {
		if n%i == 0 {
			sum.Add(sum, bigint.Power(big.NewInt(i), power))
		}
	}
	return sum
}

// Eisenstein4 returns the q-expansion of E4(q) = 1 + 240*sum(sigma_3(n) q^n)
// truncated at q^maxQOrder.
func Eisenstein4(maxQOrder int64) *ec.Polynomial {
	pol := ec.One()
	for n := int64(1); n <= maxQOrder; n++ {
		sigma := SigmaDivisor(n, 3)
		coef := new(big.Int).Mul(big.NewInt(240), sigma)
		t := ec.NewPolynomial(ec.NewTerm(coef, ec.Monomial{QExp: n}))
		pol = pol.Add(t)
	}
	return pol
}

// Delta1 returns the q-expansion of Delta(q)/q = prod_{n=1}^{order} (1-q^n)^24,
// truncated at q^order.
func Delta1(order int64) *ec.Polynomial {
	pol := ec.One()
	for n := int64(1); n <= order; n++ {
		t := ec.NewPolynomial(ec.NewTerm(big.NewInt(1), ec.Monomial{QExp: n}))
		u := ec.One().Sub(t).PowerOmitHighOrderQ(24, order)
		pol = pol.Mul(u).OmitHighOrderQ(order)
	}
	return pol
}

// Delta1Inverse returns the q-expansion of 1/Delta1(q), via the geometric
// series 1/d = 1 + (1-d) + (1-d)^2 + ..., truncated at q^order.
func Delta1Inverse(order int64) *ec.Polynomial {
	a := ec.One().Sub(Delta1(order))
	pol := ec.One()
	for n := int64(1); n <= order; n++ {
		t := a.PowerOmitHighOrderQ(n, order)
		pol = pol.Add(t)
	}
	return pol
}

// JInvariant1 returns q*j(q), truncated at q^order.
func JInvariant1(order int64) *ec.Polynomial {
	di := Delta1Inverse(order)
	e4 := Eisenstein4(order).Pow(3).OmitHighOrderQ(order)
	j := di.Mul(e4)
	return j.OmitHighOrderQ(order)
}

// JInvariant returns the q-expansion of the j-invariant j(q) = q^-1 +
// 744 + 196884 q + ..., truncated at q^order.
func JInvariant(order int64) *ec.Polynomial {
	j1 := JInvariant1(order + 1)
	qInv := ec.NewPolynomial(ec.NewTerm(big.NewInt(1), ec.Monomial{QExp: -1}))
	return j1.Mul(qInv)
}
