package classify

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  Hola  ", "hola"},
		{"¿Qué És La FOTOSÍNTESIS?", "que es la fotosintesis"},
		{"siiiiii claro", "sii claro"},
		{"casco, guantes... y lentes!", "casco guantes y lentes"},
		{"no\tsé\n", "no se"},
	}
	for _, tc := range tests {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUsefulTokens(t *testing.T) {
	toks := Tokens("el casco y los guantes de seguridad")
	useful := UsefulTokens(toks)
	want := []string{"casco", "guantes", "seguridad"}
	if len(useful) != len(want) {
		t.Fatalf("UsefulTokens = %v, want %v", useful, want)
	}
	for i := range want {
		if useful[i] != want[i] {
			t.Errorf("UsefulTokens[%d] = %q, want %q", i, useful[i], want[i])
		}
	}
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		a, b []string
		want float64
	}{
		{nil, nil, 0},
		{[]string{"a"}, nil, 0},
		{[]string{"a", "b"}, []string{"a", "b"}, 1},
		{[]string{"a", "b"}, []string{"b", "c"}, 1.0 / 3},
	}
	for _, tc := range tests {
		if got := Jaccard(tc.a, tc.b); got != tc.want {
			t.Errorf("Jaccard(%v, %v) = %f, want %f", tc.a, tc.b, got, tc.want)
		}
	}
}
