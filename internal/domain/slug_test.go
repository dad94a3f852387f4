package domain

import "testing"

func TestDeriveSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "punctuation stripped", in: "Acme, Inc.!!", want: "acme-inc"},
		{name: "whitespace collapsed", in: "  Multi   Space  Co ", want: "multi-space-co"},
		{name: "already clean", in: "tenantforge", want: "tenantforge"},
		{name: "mixed case", in: "Legal Eagles LLP", want: "legal-eagles-llp"},
		{name: "existing hyphens collapsed", in: "a--b - c", want: "a-b-c"},
		{name: "unicode dropped", in: "Müller & Söhne", want: "mller-shne"},
		{name: "empty input", in: "", want: ""},
		{name: "only punctuation", in: "!!!", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveSlug(tc.in); got != tc.want {
				t.Fatalf("DeriveSlug(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestDeriveSlugIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"Acme, Inc.!!", "  Multi   Space  Co ", "plain"}
	for _, in := range inputs {
		once := DeriveSlug(in)
		if twice := DeriveSlug(once); twice != once {
			t.Fatalf("DeriveSlug not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}
