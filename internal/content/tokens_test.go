package content

import (
	"reflect"
	"testing"
)

func TestAddTokenDedupesCaseInsensitively(t *testing.T) {
	tokens := []string{}
	tokens = AddToken(tokens, "Figma")
	tokens = AddToken(tokens, "figma")
	tokens = AddToken(tokens, "FIGMA ")

	if !reflect.DeepEqual(tokens, []string{"Figma"}) {
		t.Fatalf("expected single Figma token, got %v", tokens)
	}
}

func TestAddTokenTrimsAndKeepsSubmittedCasing(t *testing.T) {
	tokens := AddToken(nil, "  PhotoShop  ")
	if !reflect.DeepEqual(tokens, []string{"PhotoShop"}) {
		t.Fatalf("expected trimmed PhotoShop, got %v", tokens)
	}
}

func TestAddTokenIgnoresEmptyInput(t *testing.T) {
	tokens := []string{"figma"}
	if got := AddToken(tokens, "   "); !reflect.DeepEqual(got, tokens) {
		t.Fatalf("expected no change for blank input, got %v", got)
	}
}

func TestRemoveTokenAt(t *testing.T) {
	tokens := []string{"a", "b", "c"}
	got := RemoveTokenAt(tokens, 1)
	if !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("expected [a c], got %v", got)
	}
	if got := RemoveTokenAt(tokens, 7); !reflect.DeepEqual(got, tokens) {
		t.Fatalf("expected out-of-range removal to be a no-op, got %v", got)
	}
	if got := RemoveTokenAt(tokens, -1); !reflect.DeepEqual(got, tokens) {
		t.Fatalf("expected negative index removal to be a no-op, got %v", got)
	}
}

func TestNormalizeTokensPreservesFirstOccurrence(t *testing.T) {
	got := NormalizeTokens([]string{" Figma", "figma", "", "Illustrator", "ILLUSTRATOR"})
	if !reflect.DeepEqual(got, []string{"Figma", "Illustrator"}) {
		t.Fatalf("unexpected normalization result: %v", got)
	}
}
