package ellipticcurve

import (
	"math/big"
	"testing"
)

func TestTermString(t *testing.T) {
	for _, tc := range []struct {
		term Term
		want string
	}{
		{NewTerm(big.NewInt(1), Monomial{XExp: 1}), "x"},
		{NewTerm(big.NewInt(-1), Monomial{XExp: 2}), "- x^2"},
		{NewTerm(big.NewInt(-24), Monomial{QExp: 1}), "- 24 q"},
		{NewTerm(big.NewInt(3), MonomialOne()), "3"},
		{NewTerm(big.NewInt(0), MonomialOne()), "0"},
	} {
		if got := tc.term.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestTermMulDivPow(t *testing.T) {
	x2 := NewTerm(big.NewInt(2), Monomial{XExp: 1})
	x3 := NewTerm(big.NewInt(3), Monomial{XExp: 2})
	prod := x2.Mul(x3)
	if got, want := prod.String(), "6 x^3"; got != want {
		t.Fatalf("Mul = %q, want %q", got, want)
	}
	quot := x3.Div(x2)
	if got, want := quot.Coefficient.String(), "1"; got != want {
		t.Fatalf("Div coefficient = %q, want %q", got, want)
	}
	if got, want := quot.Monomial.XExp, int64(1); got != want {
		t.Fatalf("Div monomial x exp = %d, want %d", got, want)
	}
	pw := NewTerm(big.NewInt(2), Monomial{XExp: 1}).Pow(3)
	if got, want := pw.String(), "8 x^3"; got != want {
		t.Fatalf("Pow = %q, want %q", got, want)
	}
}

func TestTermDerivative(t *testing.T) {
	term := NewTerm(big.NewInt(3), Monomial{XExp: 2, YExp: 1})
	dx := term.DerivativeX()
	if got, want := dx.String(), "6 x y"; got != want {
		t.Fatalf("DerivativeX = %q, want %q", got, want)
	}
	dy := term.DerivativeY()
	if got, want := dy.String(), "3 x^2"; got != want {
		t.Fatalf("DerivativeY = %q, want %q", got, want)
	}
}

func TestTermEvalXY(t *testing.T) {
	term := NewTerm(big.NewInt(2), Monomial{XExp: 2, YExp: 1})
	got := term.EvalXY(big.NewInt(3), big.NewInt(5))
	if want := big.NewInt(90); got.Cmp(want) != 0 {
		t.Fatalf("EvalXY = %s, want %s", got, want)
	}
}
