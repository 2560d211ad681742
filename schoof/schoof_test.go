package schoof

import (
	"math/big"
	"testing"

	"github.com/pebble8888/ellipticcurve/bigint"
)

func TestSmallPrimes(t *testing.T) {
	for _, tc := range []struct {
		p    int64
		want []int64
	}{
		{7, []int64{3, 5}},
		{19, []int64{3, 5}},
	} {
		got := SmallPrimes(big.NewInt(tc.p))
		if len(got) != len(tc.want) {
			t.Fatalf("SmallPrimes(%d) = %v, want %v", tc.p, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("SmallPrimes(%d) = %v, want %v", tc.p, got, tc.want)
			}
		}
	}
}

func TestSchoofF7(t *testing.T) {
	a, b, p := big.NewInt(2), big.NewInt(1), big.NewInt(7)
	results, err := Schoof(a, b, p)
	if err != nil {
		t.Fatal(err)
	}
	want := []bigint.ModResult{
		{L: big.NewInt(2), R: big.NewInt(1)},
		{L: big.NewInt(3), R: big.NewInt(0)},
		{L: big.NewInt(5), R: big.NewInt(3)},
	}
	if len(results) != len(want) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(want))
	}
	for i, w := range want {
		if results[i].L.Cmp(w.L) != 0 || results[i].R.Cmp(w.R) != 0 {
			t.Errorf("results[%d] = (%s, %s), want (%s, %s)", i, results[i].L, results[i].R, w.L, w.R)
		}
	}

	combined := bigint.ChineseRemainder(results)
	if combined.L.Cmp(big.NewInt(30)) != 0 || combined.R.Cmp(big.NewInt(3)) != 0 {
		t.Fatalf("ChineseRemainder = (%s, %s), want (30, 3)", combined.L, combined.R)
	}

	order, err := CurveOrder(a, b, p)
	if err != nil {
		t.Fatal(err)
	}
	if want := big.NewInt(5); order.Cmp(want) != 0 {
		t.Fatalf("CurveOrder = %s, want %s", order, want)
	}
}

func TestSchoofF19(t *testing.T) {
	a, b, p := big.NewInt(2), big.NewInt(1), big.NewInt(19)
	results, err := Schoof(a, b, p)
	if err != nil {
		t.Fatal(err)
	}
	want := []bigint.ModResult{
		{L: big.NewInt(2), R: big.NewInt(1)},
		{L: big.NewInt(3), R: big.NewInt(2)},
		{L: big.NewInt(5), R: big.NewInt(3)},
	}
	if len(results) != len(want) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(want))
	}
	for i, w := range want {
		if results[i].L.Cmp(w.L) != 0 || results[i].R.Cmp(w.R) != 0 {
			t.Errorf("results[%d] = (%s, %s), want (%s, %s)", i, results[i].L, results[i].R, w.L, w.R)
		}
	}

	combined := bigint.ChineseRemainder(results)
	if combined.L.Cmp(big.NewInt(30)) != 0 || combined.R.Cmp(big.NewInt(23)) != 0 {
		t.Fatalf("ChineseRemainder = (%s, %s), want (30, 23)", combined.L, combined.R)
	}

	trace, err := TraceOfFrobenius(a, b, p)
	if err != nil {
		t.Fatal(err)
	}
	if want := big.NewInt(-7); trace.Cmp(want) != 0 {
		t.Fatalf("TraceOfFrobenius = %s, want %s", trace, want)
	}
}
