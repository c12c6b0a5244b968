package snappea

import "testing"

func TestEuclideanAlgorithm(t *testing.T) {
	tests := []struct {
		name    string
		m, l    int64
		g, d, c int64
	}{
		// The (d, c) values pin the sign convention the length
		// formula depends on: d*m - c*l = g.
		{"coprime (1,2)", 1, 2, 1, 1, 0},
		{"coprime (2,3)", 2, 3, 1, -1, -1},
		{"non-coprime (4,6)", 4, 6, 2, -1, -1},
		{"non-coprime (6,4)", 6, 4, 2, 1, 1},
		{"meridional (1,0)", 1, 0, 1, 1, 0},
		{"orbifold (4,0)", 4, 0, 4, 1, 0},
		{"longitudinal (0,5)", 0, 5, 5, 0, -1},
		{"negative m", -4, 6, 2, 1, -1},
		{"negative l", 4, -6, 2, -1, 1},
		{"both negative", -4, -6, 2, 1, 1},
		{"negative zero pair", -4, 0, 4, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, d, c := EuclideanAlgorithm(tt.m, tt.l)
			if g != tt.g || d != tt.d || c != tt.c {
				t.Errorf("EuclideanAlgorithm(%d, %d) = (%d, %d, %d), want (%d, %d, %d)",
					tt.m, tt.l, g, d, c, tt.g, tt.d, tt.c)
			}
		})
	}
}

func TestEuclideanAlgorithm_BezoutIdentity(t *testing.T) {
	// The identity d*m - c*l = g must hold for every input pair,
	// whatever the particular coefficients turn out to be.
	values := []int64{-17, -6, -4, -1, 0, 1, 2, 3, 4, 5, 6, 12, 35}

	for _, m := range values {
		for _, l := range values {
			g, d, c := EuclideanAlgorithm(m, l)
			if g < 0 {
				t.Errorf("EuclideanAlgorithm(%d, %d): negative gcd %d", m, l, g)
			}
			if d*m-c*l != g {
				t.Errorf("EuclideanAlgorithm(%d, %d) = (%d, %d, %d): %d*%d - %d*%d = %d, want %d",
					m, l, g, d, c, d, m, c, l, d*m-c*l, g)
			}
		}
	}
}

func TestEuclideanAlgorithm_DegenerateZeroPair(t *testing.T) {
	// (0, 0) has no gcd; the function reports 0 and leaves guarding
	// against it to the caller.
	g, _, _ := EuclideanAlgorithm(0, 0)
	if g != 0 {
		t.Errorf("EuclideanAlgorithm(0, 0) gcd = %d, want 0", g)
	}
}
