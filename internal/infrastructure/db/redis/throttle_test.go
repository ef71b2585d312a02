package redis

import "testing"

func TestCooldownSeconds_GrowsExponentiallyAndCaps(t *testing.T) {
	cases := []struct {
		failCount int
		want      int
	}{
		{0, 1},
		{1, 2},
		{2, 4},
		{3, 8},
		{4, 16},
		{5, 30},
		{6, 30},
		{100, 30},
	}

	for _, tc := range cases {
		if got := cooldownSeconds(tc.failCount); got != tc.want {
			t.Errorf("cooldownSeconds(%d) = %d, want %d", tc.failCount, got, tc.want)
		}
	}
}
