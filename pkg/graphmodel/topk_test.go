package graphmodel

import (
	"reflect"
	"testing"
)

func TestTopTerms_OrderedByCountThenAlpha(t *testing.T) {
	freq := map[string]int{
		"generative ai":      3,
		"vector database":    1,
		"prompt engineering": 1,
	}

	got := TopTerms(freq, 3)
	want := []string{"generative ai", "prompt engineering", "vector database"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopTerms() = %v, want %v", got, want)
	}
}

func TestTopTerms_AllTiedIsAlphabetical(t *testing.T) {
	freq := map[string]int{"c": 5, "a": 5, "b": 5}

	// Run repeatedly: map iteration order must never leak into the result.
	want := []string{"a", "b", "c"}
	for i := 0; i < 20; i++ {
		if got := TopTerms(freq, 3); !reflect.DeepEqual(got, want) {
			t.Fatalf("TopTerms() = %v, want %v", got, want)
		}
	}
}

func TestTopTerms_ExcludesZeroCounts(t *testing.T) {
	freq := map[string]int{"used": 1, "unused": 0}

	got := TopTerms(freq, 3)
	want := []string{"used"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopTerms() = %v, want %v", got, want)
	}
}

func TestTopTerms_KLargerThanUsedSet(t *testing.T) {
	freq := map[string]int{"only": 2}

	if got := TopTerms(freq, 10); len(got) != 1 {
		t.Errorf("TopTerms() = %v, want single entry", got)
	}
}

func TestTopTerms_EmptyAndNegativeK(t *testing.T) {
	if got := TopTerms(map[string]int{}, 3); len(got) != 0 {
		t.Errorf("TopTerms(empty) = %v, want empty", got)
	}
	if got := TopTerms(map[string]int{"a": 1}, 0); len(got) != 0 {
		t.Errorf("TopTerms(k=0) = %v, want empty", got)
	}
	if got := TopTerms(map[string]int{"a": 1}, -1); len(got) != 0 {
		t.Errorf("TopTerms(k=-1) = %v, want empty", got)
	}
}
