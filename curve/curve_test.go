package curve

import (
	"math/big"
	"testing"
)

func TestTinyCurveF5(t *testing.T) {
	c := New(big.NewInt(1), big.NewInt(1), big.NewInt(5))
	pts := c.Points()
	if len(pts) != 9 {
		t.Fatalf("len(points) = %d, want 9", len(pts))
	}

	want := []string{"(0, 1)", "(0, 4)", "(2, 1)", "(2, 4)", "(3, 1)", "(3, 4)", "(4, 2)", "(4, 3)", "O"}
	got := make(map[string]bool)
	for _, p := range pts {
		got[p.String()] = true
	}
	for _, w := range want {
		if !got[w] {
			t.Errorf("missing expected point %s", w)
		}
	}

	if got, want := c.JInvariant().String(), "2"; got != want {
		t.Fatalf("JInvariant() = %s, want %s", got, want)
	}

	for _, p := range pts {
		if !c.IsOnCurve(p) {
			t.Errorf("point %s reported as not on curve", p)
		}
	}
}

func TestPlusIdentityAndInverse(t *testing.T) {
	c := New(big.NewInt(1), big.NewInt(1), big.NewInt(5))
	p := NewPoint(big.NewInt(0), big.NewInt(1))
	o := Infinity()
	if got := c.Plus(p, o); !got.Equal(p) {
		t.Fatalf("P+O = %s, want %s", got, p)
	}
	negP := c.Negate(p)
	if got := c.Plus(p, negP); !got.IsInfinity() {
		t.Fatalf("P+(-P) = %s, want O", got)
	}
}

func TestPointOrderDividesGroupOrder(t *testing.T) {
	c := New(big.NewInt(1), big.NewInt(1), big.NewInt(5))
	for _, p := range c.Points() {
		order := c.PointOrder(p)
		scaled := c.MultiplyScalar(p, order)
		if !scaled.IsInfinity() {
			t.Errorf("[order(%s)]%s = %s, want O", order, p, scaled)
		}
	}
}
