package shuffle

import (
	"math/rand/v2"
	"testing"
)

func TestShuffle_IsPermutation(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e", "b"}
	out := Shuffle(nil, in)

	if len(out) != len(in) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(in))
	}

	counts := make(map[string]int)
	for _, v := range in {
		counts[v]++
	}
	for _, v := range out {
		counts[v]--
	}
	for v, n := range counts {
		if n != 0 {
			t.Errorf("element %q count off by %d", v, n)
		}
	}
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}
	want := []int{1, 2, 3, 4, 5, 6, 7, 8}

	rng := rand.New(rand.NewPCG(7, 11))
	_ = Shuffle(rng, in)

	for i := range want {
		if in[i] != want[i] {
			t.Fatalf("input mutated at %d: got %d, want %d", i, in[i], want[i])
		}
	}
}

func TestShuffle_FreshCopy(t *testing.T) {
	in := []int{1, 2}
	out := Shuffle(nil, in)

	out[0] = 99
	if in[0] == 99 || in[1] == 99 {
		t.Error("output shares backing array with input")
	}
}

func TestShuffle_Deterministic(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	a := Shuffle(rand.New(rand.NewPCG(42, 0)), in)
	b := Shuffle(rand.New(rand.NewPCG(42, 0)), in)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different orders at %d: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestShuffle_EmptyAndSingleton(t *testing.T) {
	if out := Shuffle[int](nil, nil); len(out) != 0 {
		t.Errorf("Shuffle(nil) len = %d, want 0", len(out))
	}
	if out := Shuffle(nil, []int{7}); len(out) != 1 || out[0] != 7 {
		t.Errorf("Shuffle([7]) = %v, want [7]", out)
	}
}

func TestPick_LimitsCount(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}

	if out := Pick(nil, in, 3); len(out) != 3 {
		t.Errorf("Pick(5 items, 3) len = %d, want 3", len(out))
	}
	if out := Pick(nil, in, 0); len(out) != 5 {
		t.Errorf("Pick(5 items, 0) len = %d, want 5 (all)", len(out))
	}
	if out := Pick(nil, in, 9); len(out) != 5 {
		t.Errorf("Pick(5 items, 9) len = %d, want 5 (all)", len(out))
	}
}

func TestPick_DrawsWithoutReplacement(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6}
	out := Pick(rand.New(rand.NewPCG(3, 9)), in, 4)

	seen := make(map[int]bool)
	for _, v := range out {
		if seen[v] {
			t.Fatalf("element %d drawn twice", v)
		}
		seen[v] = true
	}
}
