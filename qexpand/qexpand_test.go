package qexpand

import "testing"

func TestSigmaDivisor(t *testing.T) {
	for _, tc := range []struct {
		n, power int64
		want     string
	}{
		{1, 0, "1"}, {6, 0, "4"}, {12, 0, "6"},
		{4, 1, "7"}, {8, 1, "15"}, {12, 1, "28"},
		{5, 3, "126"}, {12, 3, "2044"},
	} {
		if got := SigmaDivisor(tc.n, tc.power).String(); got != tc.want {
			t.Errorf("SigmaDivisor(%d, %d) = %s, want %s", tc.n, tc.power, got, tc.want)
		}
	}
}

func TestEisenstein4(t *testing.T) {
	for _, tc := range []struct {
		order int64
		want  string
	}{
		{3, "6720 q^3 + 2160 q^2 + 240 q + 1"},
		{4, "17520 q^4 + 6720 q^3 + 2160 q^2 + 240 q + 1"},
	} {
		if got := Eisenstein4(tc.order).String(); got != tc.want {
			t.Errorf("Eisenstein4(%d) = %q, want %q", tc.order, got, tc.want)
		}
	}
}

func TestDelta1(t *testing.T) {
	for _, tc := range []struct {
		order int64
		want  string
	}{
		{1, "- 24 q + 1"},
		{2, "252 q^2 - 24 q + 1"},
		{3, "- 1472 q^3 + 252 q^2 - 24 q + 1"},
	} {
		if got := Delta1(tc.order).String(); got != tc.want {
			t.Errorf("Delta1(%d) = %q, want %q", tc.order, got, tc.want)
		}
	}
}

func TestDelta1Inverse(t *testing.T) {
	for _, tc := range []struct {
		order int64
		want  string
	}{
		{1, "24 q + 1"},
		{2, "324 q^2 + 24 q + 1"},
		{3, "3200 q^3 + 324 q^2 + 24 q + 1"},
	} {
		if got := Delta1Inverse(tc.order).String(); got != tc.want {
			t.Errorf("Delta1Inverse(%d) = %q, want %q", tc.order, got, tc.want)
		}
	}
}

func TestJInvariant1(t *testing.T) {
	for _, tc := range []struct {
		order int64
		want  string
	}{
		{2, "196884 q^2 + 744 q + 1"},
		{3, "21493760 q^3 + 196884 q^2 + 744 q + 1"},
	} {
		if got := JInvariant1(tc.order).String(); got != tc.want {
			t.Errorf("JInvariant1(%d) = %q, want %q", tc.order, got, tc.want)
		}
	}
}

func TestJInvariant(t *testing.T) {
	for _, tc := range []struct {
		order int64
		want  string
	}{
		{2, "21493760 q^2 + 196884 q + 744 + q^-1"},
		{3, "864299970 q^3 + 21493760 q^2 + 196884 q + 744 + q^-1"},
	} {
		if got := JInvariant(tc.order).String(); got != tc.want {
			t.Errorf("JInvariant(%d) = %q, want %q", tc.order, got, tc.want)
		}
	}
}
