package bigint

import (
	"math/big"
	"testing"
)

func b(n int64) *big.Int { return big.NewInt(n) }

func TestPower(t *testing.T) {
	got := Power(b(3), 4)
	if got.Cmp(b(81)) != 0 {
		t.Fatalf("Power(3,4) = %s, want 81", got)
	}
	if got := Power(b(5), 0); got.Cmp(b(1)) != 0 {
		t.Fatalf("Power(5,0) = %s, want 1", got)
	}
}

func TestPowerModulo(t *testing.T) {
	got, err := PowerModulo(b(4), 13, b(497))
	if err != nil {
		t.Fatal(err)
	}
	if got.Cmp(b(445)) != 0 {
		t.Fatalf("PowerModulo(4,13,497) = %s, want 445", got)
	}

	if _, err := PowerModulo(b(2), 3, b(1)); err == nil {
		t.Fatal("expected domain error for modulus 1")
	}
}

func TestInverse(t *testing.T) {
	p := b(7)
	inv, err := Inverse(b(3), p)
	if err != nil {
		t.Fatal(err)
	}
	prod := new(big.Int).Mul(b(3), inv)
	prod.Mod(prod, p)
	if prod.Cmp(b(1)) != 0 {
		t.Fatalf("3 * inverse(3) mod 7 = %s, want 1", prod)
	}
}

func TestExtendedGCD(t *testing.T) {
	g, x, y := ExtendedGCD(b(35), b(15))
	if g.Cmp(b(5)) != 0 {
		t.Fatalf("gcd(35,15) = %s, want 5", g)
	}
	check := new(big.Int).Add(new(big.Int).Mul(b(35), x), new(big.Int).Mul(b(15), y))
	if check.Cmp(g) != 0 {
		t.Fatalf("35*%s + 15*%s = %s, want %s", x, y, check, g)
	}
}

func TestChineseRemainder(t *testing.T) {
	list := []ModResult{
		{L: b(2), R: b(1)},
		{L: b(3), R: b(0)},
		{L: b(5), R: b(3)},
	}
	got := ChineseRemainder(list)
	if got.L.Cmp(b(30)) != 0 {
		t.Fatalf("L = %s, want 30", got.L)
	}
	if got.R.Cmp(b(3)) != 0 {
		t.Fatalf("R = %s, want 3", got.R)
	}
}

func TestChineseRemainder19(t *testing.T) {
	list := []ModResult{
		{L: b(2), R: b(1)},
		{L: b(3), R: b(2)},
		{L: b(5), R: b(3)},
	}
	got := ChineseRemainder(list)
	if got.L.Cmp(b(30)) != 0 {
		t.Fatalf("L = %s, want 30", got.L)
	}
	if got.R.Cmp(b(23)) != 0 {
		t.Fatalf("R = %s, want 23", got.R)
	}
}

func TestDivModFloor(t *testing.T) {
	if got := ModFloor(b(-1), b(5)); got.Cmp(b(4)) != 0 {
		t.Fatalf("ModFloor(-1,5) = %s, want 4", got)
	}
	if got := DivFloor(b(-7), b(2)); got.Cmp(b(-4)) != 0 {
		t.Fatalf("DivFloor(-7,2) = %s, want -4", got)
	}
}
