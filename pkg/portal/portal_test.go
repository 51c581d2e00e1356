package portal

import (
	"net/http/httptest"
	"testing"
)

func TestStringable(t *testing.T) {
	s := MakeStringable("  Hello World  ")

	if s.String() != "Hello World" {
		t.Fatalf("expected trimmed value, got %q", s.String())
	}

	if s.ToLower() != "hello world" {
		t.Fatalf("unexpected lower value %q", s.ToLower())
	}

	if s.IsEmpty() {
		t.Fatal("expected non-empty")
	}

	if !MakeStringable("   ").IsEmpty() {
		t.Fatal("expected whitespace-only input to be empty")
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello World":       "hello-world",
		"  Spaces  Around ": "spaces-around",
		"Árbol de Año":      "arbol-de-ano",
	}

	for input, want := range cases {
		if got := Slugify(input); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestParseClientIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.9:4321"

	if got := ParseClientIP(r); got != "10.0.0.9" {
		t.Fatalf("expected the remote host, got %q", got)
	}

	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	if got := ParseClientIP(r); got != "203.0.113.7" {
		t.Fatalf("expected the first forwarded hop, got %q", got)
	}
}

type validatedConfig struct {
	Name string `validate:"required,min=4"`
	Mode string `validate:"required,oneof=local production"`
}

func TestValidator(t *testing.T) {
	v := MakeValidator()

	if !v.Passes(validatedConfig{Name: "inkpress", Mode: "local"}) {
		t.Fatal("expected a valid struct to pass")
	}

	rejected, err := v.Rejects(validatedConfig{Name: "no", Mode: "weird"})
	if !rejected || err == nil {
		t.Fatal("expected an invalid struct rejected")
	}

	if v.GetErrorsAsJson() == "" {
		t.Fatal("expected field errors rendered as json")
	}
}
