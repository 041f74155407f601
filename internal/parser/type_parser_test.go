package parser

import "testing"

func TestParseTypeBase(t *testing.T) {
	for _, name := range []string{"Int", "Bool", "String"} {
		ty, err := ParseType(name)
		if err != nil {
			t.Fatalf("ParseType(%q): %v", name, err)
		}
		if ty.String() != name {
			t.Errorf("ParseType(%q) = %s, want %s", name, ty.String(), name)
		}
	}
}

func TestParseTypeUnknown(t *testing.T) {
	ty, err := ParseType("u3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ty.String() != "u3" {
		t.Errorf("got %s, want u3", ty.String())
	}
}

func TestParseTypeArrowRightAssociative(t *testing.T) {
	ty, err := ParseType("Int -> Bool -> String")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ty.String() != "Int -> Bool -> String" {
		t.Errorf("got %s, want Int -> Bool -> String", ty.String())
	}
}

func TestParseTypeParenthesizedArgument(t *testing.T) {
	ty, err := ParseType("(Int -> Bool) -> String")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ty.String() != "(Int -> Bool) -> String" {
		t.Errorf("got %s, want (Int -> Bool) -> String", ty.String())
	}
}

func TestParseTypeUnknownBaseNameRejected(t *testing.T) {
	if _, err := ParseType("Foo"); err == nil {
		t.Fatal("expected error for unknown base type name, got nil")
	}
}

func TestParseTypeTrailingTokenRejected(t *testing.T) {
	if _, err := ParseType("Int Bool"); err == nil {
		t.Fatal("expected trailing-token error, got nil")
	}
}
