package solver

import (
	"math/big"
	"testing"
)

func row(vals ...int64) []*big.Int {
	r := make([]*big.Int, len(vals))
	for i, v := range vals {
		r[i] = big.NewInt(v)
	}
	return r
}

func TestSolve2x2(t *testing.T) {
	// c0 + c1 = 3
	// c0 - c1 = 1
	matrix := [][]*big.Int{
		row(1, 1, 3),
		row(1, -1, 1),
	}
	got, err := Solve(matrix)
	if err != nil {
		t.Fatal(err)
	}
	if want := int64(2); got[0][len(got[0])-1].Int64() != want {
		t.Fatalf("c0 = %s, want %d", got[0][len(got[0])-1], want)
	}
	if want := int64(1); got[1][len(got[1])-1].Int64() != want {
		t.Fatalf("c1 = %s, want %d", got[1][len(got[1])-1], want)
	}
}

func TestSolve3x3(t *testing.T) {
	// c0 + c1 + c2 = 6
	//      c1 + c2 = 5
	//           c2 = 3
	matrix := [][]*big.Int{
		row(1, 1, 1, 6),
		row(0, 1, 1, 5),
		row(0, 0, 1, 3),
	}
	got, err := Solve(matrix)
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{1, 2, 3}
	for i, w := range want {
		last := got[i][len(got[i])-1]
		if last.Int64() != w {
			t.Fatalf("unknown %d = %s, want %d", i, last, w)
		}
	}
}

func TestSolveUnsolvable(t *testing.T) {
	// column 1 has no non-zero pivot in either row.
	matrix := [][]*big.Int{
		row(0, 0, 1),
		row(0, 0, 1),
	}
	if _, err := Solve(matrix); err == nil {
		t.Fatal("Solve of a singular system succeeded, want ErrUnsolvable")
	}
}
