package grading_test

import (
	"slices"
	"testing"

	"github.com/aliskhannn/imtihan/internal/grading"
)

func TestShuffle_PreservesElementsAndInput(t *testing.T) {
	items := []int{1, 2, 2, 3, 4, 5, 6, 7, 8, 9}
	original := slices.Clone(items)

	for i := 0; i < 50; i++ {
		got := grading.Shuffle(items, nil)

		if len(got) != len(items) {
			t.Fatalf("expected length %d, got %d", len(items), len(got))
		}
		if !slices.Equal(items, original) {
			t.Fatalf("input was mutated: %v", items)
		}

		sorted := slices.Clone(got)
		slices.Sort(sorted)
		if !slices.Equal(sorted, original) {
			t.Fatalf("multiset changed: %v", got)
		}
	}
}

func TestShuffle_ReturnsNewSlice(t *testing.T) {
	items := []string{"a", "b", "c"}
	got := grading.Shuffle(items, nil)

	got[0] = "changed"
	if items[0] == "changed" {
		t.Error("expected shuffled slice not to share storage with input")
	}
}

func TestShuffle_EmptyAndSingle(t *testing.T) {
	if got := grading.Shuffle([]int{}, nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
	if got := grading.Shuffle[int](nil, nil); len(got) != 0 {
		t.Errorf("expected empty result for nil input, got %v", got)
	}
	if got := grading.Shuffle([]int{42}, nil); !slices.Equal(got, []int{42}) {
		t.Errorf("expected [42], got %v", got)
	}
}

func TestShuffle_SeededIsReproducible(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

	a := grading.Shuffle(items, grading.NewSeededSource(1, 2))
	b := grading.Shuffle(items, grading.NewSeededSource(1, 2))

	if !slices.Equal(a, b) {
		t.Errorf("expected equal orders for equal seeds, got %v and %v", a, b)
	}
}

func TestShuffle_IsNotIdempotent(t *testing.T) {
	items := make([]int, 20)
	for i := range items {
		items[i] = i
	}

	first := grading.Shuffle(items, nil)
	for i := 0; i < 10; i++ {
		if !slices.Equal(first, grading.Shuffle(items, nil)) {
			return
		}
	}
	t.Error("expected repeated shuffles to produce different orders")
}

// swapSource always picks index 0, which rotates the slice left by one.
type swapSource struct{}

func (swapSource) IntN(int) int { return 0 }

func TestShuffle_UsesFisherYatesDraws(t *testing.T) {
	got := grading.Shuffle([]int{1, 2, 3, 4}, swapSource{})
	want := []int{2, 3, 4, 1}

	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestShuffle_Uniform(t *testing.T) {
	src := grading.NewSeededSource(42, 1337)
	counts := map[[3]int]int{}
	const rounds = 60000

	for i := 0; i < rounds; i++ {
		got := grading.Shuffle([]int{1, 2, 3}, src)
		counts[[3]int{got[0], got[1], got[2]}]++
	}

	if len(counts) != 6 {
		t.Fatalf("expected all 6 permutations, got %d", len(counts))
	}
	expected := rounds / 6
	for perm, n := range counts {
		if n < expected*9/10 || n > expected*11/10 {
			t.Errorf("permutation %v drawn %d times, expected about %d", perm, n, expected)
		}
	}
}
