package axes

import (
	"math"
	"strconv"
	"testing"
)

var (
	nan = math.NaN()
	inf = math.Inf(1)
)

var intervalUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{Interval{3, 6}, nan, Interval{3, 6}},
	{UnsetInterval(), nan, UnsetInterval()},
	{UnsetInterval(), 5, Interval{5, 5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervalUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if got != tc.want {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

var intervalValidTests = []struct {
	i                 Interval
	valid, degenerate bool
}{
	{UnsetInterval(), false, false},
	{Interval{1, 0}, false, false},
	{Interval{-inf, 3}, false, false},
	{Interval{2, 2}, true, true},
	{Interval{2, 3}, true, false},
}

func TestIntervalValid(t *testing.T) {
	for i, tc := range intervalValidTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := tc.i.Valid(); got != tc.valid {
				t.Errorf("%v.Valid() = %t, want %t", tc.i, got, tc.valid)
			}
			if got := tc.i.Degenerate(); got != tc.degenerate {
				t.Errorf("%v.Degenerate() = %t, want %t", tc.i, got, tc.degenerate)
			}
		})
	}
}
