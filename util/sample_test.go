package util

import (
	"reflect"
	"slices"
	"testing"

	"github.com/kbukum/flowkit/errors"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestEvenSample(t *testing.T) {
	tests := []struct {
		name  string
		list  []int
		count int
		want  []int
	}{
		{"three of ten", seq(10), 3, []int{0, 3, 6}},
		{"five of ten", seq(10), 5, []int{0, 2, 4, 6, 8}},
		{"all", seq(4), 4, []int{0, 1, 2, 3}},
		{"one", seq(7), 1, []int{0}},
		{"count above length", seq(3), 5, []int{0, 1, 2}},
		{"zero count", seq(3), 0, []int{0, 1, 2}},
		{"negative count", seq(3), -2, []int{0, 1, 2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := EvenSample(tc.list, tc.count); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("EvenSample(%v, %d) = %v, want %v", tc.list, tc.count, got, tc.want)
			}
		})
	}
}

func TestEvenSampleSpansRange(t *testing.T) {
	list := seq(100)
	got := EvenSample(list, 7)
	if len(got) != 7 {
		t.Fatalf("expected 7 samples, got %d", len(got))
	}
	if !slices.IsSorted(got) {
		t.Errorf("expected ascending order, got %v", got)
	}
	if got[0] != 0 || got[6] < 80 {
		t.Errorf("expected samples to span the range, got %v", got)
	}
}

func TestRandomSample(t *testing.T) {
	list := seq(50)
	got := RandomSample(list, 10, WithSeed(7))
	if len(got) != 10 {
		t.Fatalf("expected 10 samples, got %d", len(got))
	}
	if len(Unique(got)) != 10 {
		t.Errorf("expected distinct elements, got %v", got)
	}
	for _, v := range got {
		if v < 0 || v >= 50 {
			t.Errorf("sample %d not from input", v)
		}
	}
}

func TestRandomSampleDeterministic(t *testing.T) {
	list := seq(30)
	a := RandomSample(list, 5, WithSeed(123))
	b := RandomSample(list, 5, WithSeed(123))
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed gave %v and %v", a, b)
	}

	// default seed is the list length
	words := make([]string, 30)
	for i := range words {
		words[i] = string(rune('a' + i%26))
	}
	c := RandomSample(list, 5)
	d := RandomSample(list, 5, WithSeed(30))
	if !reflect.DeepEqual(c, d) {
		t.Errorf("default seed should equal len(list): %v vs %v", c, d)
	}
	w := RandomSample(words, 5)
	for i, idx := range c {
		if w[i] != words[idx] {
			t.Errorf("same-length lists should sample the same positions")
		}
	}
}

func TestRandomSampleBounds(t *testing.T) {
	list := seq(3)
	if got := RandomSample(list, 4); !reflect.DeepEqual(got, list) {
		t.Errorf("expected list unchanged, got %v", got)
	}
	if got := RandomSample(list, 0); !reflect.DeepEqual(got, list) {
		t.Errorf("expected list unchanged, got %v", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  []int
	}{
		{"prefix", 2, []int{0, 1}},
		{"exact", 4, []int{0, 1, 2, 3}},
		{"beyond", 10, []int{0, 1, 2, 3}},
		{"zero", 0, []int{}},
		{"negative", -1, []int{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Truncate(seq(4), tc.count)
			if len(got) != len(tc.want) || (len(got) > 0 && !reflect.DeepEqual(got, tc.want)) {
				t.Errorf("Truncate(%d) = %v, want %v", tc.count, got, tc.want)
			}
		})
	}
}

func TestTruncateDoesNotExposeTail(t *testing.T) {
	list := seq(4)
	got := Truncate(list, 2)
	got = append(got, 99)
	if list[2] != 2 {
		t.Error("appending to a truncated slice must not overwrite the source")
	}
}

func TestSelect(t *testing.T) {
	list := seq(10)
	for _, strategy := range Strategies() {
		t.Run(strategy, func(t *testing.T) {
			got, err := Select(strategy, list, 3, WithSeed(1))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != 3 {
				t.Errorf("expected 3 elements, got %v", got)
			}
		})
	}

	got, _ := Select(StrategyEven, list, 3)
	if !reflect.DeepEqual(got, []int{0, 3, 6}) {
		t.Errorf("even: got %v", got)
	}
	got, _ = Select(StrategyTruncate, list, 3)
	if !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Errorf("truncate: got %v", got)
	}
}

func TestSelectUnknownStrategy(t *testing.T) {
	_, err := Select("stride", seq(3), 1)
	if !errors.IsCode(err, errors.ErrCodeInvalidArgument) {
		t.Fatalf("expected INVALID_ARGUMENT, got %v", err)
	}
	appErr, _ := errors.AsAppError(err)
	if appErr.Details["strategy"] != "stride" {
		t.Errorf("expected strategy name in details, got %v", appErr.Details)
	}
}
