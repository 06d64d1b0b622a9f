package components

import "testing"

func TestLayoutRowSumsToTotal(t *testing.T) {
	cases := []struct {
		total, n int
	}{
		{120, 5},
		{121, 5},
		{124, 5},
		{80, 3},
		{7, 7},
	}
	for _, tc := range cases {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tc.total, tc.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Fatalf("LayoutRow(%d, %d) sums to %d", tc.total, tc.n, sum)
		}
		// No width may differ from another by more than 1.
		min, max := widths[0], widths[0]
		for _, w := range widths {
			if w < min {
				min = w
			}
			if w > max {
				max = w
			}
		}
		if max-min > 1 {
			t.Fatalf("LayoutRow(%d, %d) uneven: %v", tc.total, tc.n, widths)
		}
	}
}

func TestLayoutRowDegenerate(t *testing.T) {
	if got := LayoutRow(100, 0); got != nil {
		t.Fatalf("LayoutRow(100, 0) = %v, want nil", got)
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('e'); got != TabExpenses {
		t.Fatalf("TabIdxByKey('e') = %d, want %d", got, TabExpenses)
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Fatalf("TabIdxByKey('z') = %d, want -1", got)
	}
}
