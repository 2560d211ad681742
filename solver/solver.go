// Package solver solves a system of linear integer equations, given as
// an augmented matrix whose last column holds the right-hand side, by
// LCM-scaled Gaussian elimination followed by back-substitution. Scaling
// by the LCM of pivot and target coefficients avoids introducing
// fractions, so every intermediate entry stays an exact integer.
package solver

import (
	"math/big"

	"github.com/pkg/errors"
)

// ErrUnsolvable reports that no non-zero pivot was available in some
// column of the system, so no unique solution could be recovered.
var ErrUnsolvable = errors.New("solver: no pivot available, system is unsolvable")

// Solve returns the row-reduced augmented matrix: column i of row i
// holds 1 and the last column holds the solution for the i'th unknown,
// once every row above and including the pivot has been eliminated.
// matrix must be rectangular and non-empty.
func Solve(matrix [][]*big.Int) ([][]*big.Int, error) {
	rowCount := len(matrix)
	colCount := len(matrix[0])

	a := make([][]*big.Int, rowCount)
	for i := range a {
		a[i] = make([]*big.Int, colCount)
		for j := range a[i] {
			a[i][j] = new(big.Int).Set(matrix[i][j])
		}
	}

	row := make([]int, rowCount)
	for i := range row {
		row[i] = i
	}

	for i := 0; i < colCount-1; i++ {
		for j := i; j < rowCount; j++ {
			if a[row[j]][i].Sign() != 0 {
				if i != j {
					row[i], row[j] = row[j], row[i]
				}
				break
			}
		}
		c1 := a[row[i]][i]
		if c1.Sign() == 0 {
			return nil, errors.Wrapf(ErrUnsolvable, "column %d", i)
		}
		for j := i + 1; j < rowCount; j++ {
			c2 := a[row[j]][i]
			if c2.Sign() == 0 {
				continue
			}
			l := lcm(c1, c2)
			cc1 := new(big.Int).Div(l, c1)
			cc2 := new(big.Int).Div(l, c2)
			for k := 0; k < colCount; k++ {
				a[row[j]][k].Mul(a[row[j]][k], cc2)
			}
			for k := 0; k < colCount; k++ {
				val := new(big.Int).Mul(a[row[i]][k], cc1)
				a[row[j]][k].Sub(a[row[j]][k], val)
			}
		}
	}

	colPrim := colCount - 1
	for i := colCount - 2; i >= 0; i-- {
		diag := a[row[i]][i]
		prim := a[row[i]][colPrim]
		if diag.Cmp(big.NewInt(1)) != 0 {
			a[row[i]][i] = big.NewInt(1)
			a[row[i]][colPrim] = new(big.Int).Div(prim, diag)
		}
		val := a[row[i]][colPrim]
		for j := 0; j < i; j++ {
			tVal := a[row[j]][i]
			a[row[j]][colPrim] = new(big.Int).Sub(a[row[j]][colPrim], new(big.Int).Mul(tVal, val))
			a[row[j]][i] = big.NewInt(0)
		}
	}

	b := make([][]*big.Int, rowCount)
	for i := range b {
		b[i] = a[row[i]]
	}
	return b, nil
}

func lcm(x, y *big.Int) *big.Int {
	xa := new(big.Int).Abs(x)
	ya := new(big.Int).Abs(y)
	g := new(big.Int).GCD(nil, nil, xa, ya)
	l := new(big.Int).Div(xa, g)
	l.Mul(l, ya)
	return l
}
