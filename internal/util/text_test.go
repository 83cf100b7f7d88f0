package util

import (
	"reflect"
	"testing"
)

func TestContainsFold(t *testing.T) {
	if !ContainsFold("Charlie Travels", "TRAV") {
		t.Fatalf("expected case-insensitive match")
	}
	if !ContainsFold("anything", "") {
		t.Fatalf("empty needle should match")
	}
	if ContainsFold("Bella Cooks", "tech") {
		t.Fatalf("unexpected match")
	}
	if !ContainsAnyFold("Tech & Gaming", []string{"food", "GAMING"}) {
		t.Fatalf("expected any-match")
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("Tech & Gaming, Education/How-To")
	want := []string{"tech", "gaming", "education", "how", "to"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("tokens = %v, want %v", got, want)
	}
	if NormalizeWhitespace("  hi \n  there ") != "hi there" {
		t.Fatalf("normalize failed")
	}
}
