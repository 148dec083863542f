package vocab

import (
	"reflect"
	"testing"
)

func TestExtractTerms_NumberedHeadings(t *testing.T) {
	doc := "# Vocabulary\n\n## 1. Generative AI\nSome definition.\n\n## 2. Vector Database\n\n## 3. Prompt Engineering\n"

	got := ExtractTerms(doc)
	want := []string{"generative ai", "vector database", "prompt engineering"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractTerms() = %v, want %v", got, want)
	}
}

func TestExtractTerms_NoDotHeading(t *testing.T) {
	doc := "## Generative AI\n"

	got := ExtractTerms(doc)
	want := []string{"generative ai"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractTerms() = %v, want %v", got, want)
	}
}

func TestExtractTerms_SkipsEmptyTerms(t *testing.T) {
	// A heading with nothing after the dot produces no term at all,
	// not a zero-count entry.
	doc := "## 1.\n## 2. Vector Database\n##\n"

	got := ExtractTerms(doc)
	want := []string{"vector database"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractTerms() = %v, want %v", got, want)
	}
}

func TestExtractTerms_PreservesOrderAndDuplicates(t *testing.T) {
	doc := "## 1. Token\n## 2. Embedding\n## 3. Token\n"

	got := ExtractTerms(doc)
	want := []string{"token", "embedding", "token"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractTerms() = %v, want %v", got, want)
	}
}

func TestExtractTerms_IgnoresNonHeadingLines(t *testing.T) {
	doc := "Intro paragraph mentioning 1. something\n- bullet\n   ## 4. Fine Tuning   \n"

	got := ExtractTerms(doc)
	want := []string{"fine tuning"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractTerms() = %v, want %v", got, want)
	}
}

func TestExtractTerms_EmptyDocument(t *testing.T) {
	if got := ExtractTerms(""); len(got) != 0 {
		t.Errorf("ExtractTerms(\"\") = %v, want empty", got)
	}
	if got := ExtractTerms("plain prose, no markup"); len(got) != 0 {
		t.Errorf("ExtractTerms(prose) = %v, want empty", got)
	}
}
