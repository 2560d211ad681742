package sea

import (
	"math/big"
	"testing"
)

func TestModularPolynomialTemplateP2(t *testing.T) {
	got := ModularPolynomialTemplate(2).String()
	want := "x^3 + x^2 y^2 c_2_2 + x^2 y c_1_2 + x^2 c_0_2 + x y^2 c_1_2 + x y c_1_1 + x c_0_1 + y^3 + y^2 c_0_2 + y c_0_1 + c_0_0"
	if got != want {
		t.Fatalf("ModularPolynomialTemplate(2) = %q, want %q", got, want)
	}
}

func TestModularPolynomial2(t *testing.T) {
	got := ModularPolynomial(2).String()
	want := "x^3 - x^2 y^2 + 1488 x^2 y - 162000 x^2 + 1488 x y^2 + 40773375 x y + 8748000000 x + y^3 - 162000 y^2 + 8748000000 y - 157464000000000"
	if got != want {
		t.Fatalf("ModularPolynomial(2) = %q, want %q", got, want)
	}
}

func TestModularPolynomial3(t *testing.T) {
	got := ModularPolynomial(3).String()
	want := "x^4 - x^3 y^3 + 2232 x^3 y^2 - 1069956 x^3 y + 36864000 x^3 + 2232 x^2 y^3 + 2587918086 x^2 y^2 + 8900222976000 x^2 y + 452984832000000 x^2 - 1069956 x y^3 + 8900222976000 x y^2 - 770845966336000000 x y + 1855425871872000000000 x + y^4 + 36864000 y^3 + 452984832000000 y^2 + 1855425871872000000000 y"
	if got != want {
		t.Fatalf("ModularPolynomial(3) = %q, want %q", got, want)
	}
}

func TestClassifyElkies3(t *testing.T) {
	a, b, p := big.NewInt(1), big.NewInt(7), big.NewInt(23)
	kind, gcd, err := Classify(a, b, p, 3)
	if err != nil {
		t.Fatal(err)
	}
	if kind != Elkies {
		t.Fatalf("kind = %s, want elkies", kind)
	}
	if got, want := gcd.String(), "x^2 + 4 x + 3"; got != want {
		t.Fatalf("gcd = %q, want %q", got, want)
	}

	roots := IsogenousJInvariants(gcd, p)
	wantRoots := []int64{20, 22}
	if len(roots) != len(wantRoots) {
		t.Fatalf("IsogenousJInvariants = %v, want %v", roots, wantRoots)
	}
	for i, w := range wantRoots {
		if roots[i].Int64() != w {
			t.Fatalf("IsogenousJInvariants = %v, want %v", roots, wantRoots)
		}
	}
}

func TestClassifyElkies5(t *testing.T) {
	a, b, p := big.NewInt(1), big.NewInt(23), big.NewInt(131)
	kind, gcd, err := Classify(a, b, p, 5)
	if err != nil {
		t.Fatal(err)
	}
	if kind != Elkies {
		t.Fatalf("kind = %s, want elkies", kind)
	}
	if got, want := gcd.String(), "x^2 + 88 x + 49"; got != want {
		t.Fatalf("gcd = %q, want %q", got, want)
	}

	roots := IsogenousJInvariants(gcd, p)
	wantRoots := []int64{17, 26}
	if len(roots) != len(wantRoots) {
		t.Fatalf("IsogenousJInvariants = %v, want %v", roots, wantRoots)
	}
	for i, w := range wantRoots {
		if roots[i].Int64() != w {
			t.Fatalf("IsogenousJInvariants = %v, want %v", roots, wantRoots)
		}
	}
}
