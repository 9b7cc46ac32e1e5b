package textutil

import (
	"math"
	"testing"
)

func TestJaccardIdentical(t *testing.T) {
	text := "Police Traffic Stop Gone Wrong"
	got := Jaccard(text, text)
	if got != 1.0 {
		t.Errorf("Jaccard(identical) = %v, want 1.0", got)
	}
}

func TestJaccardDisjoint(t *testing.T) {
	got := Jaccard("apple banana cherry", "dog elephant frog")
	if got != 0 {
		t.Errorf("Jaccard(disjoint) = %v, want 0", got)
	}
}

func TestJaccardEmpty(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
	}{
		{"both empty", "", ""},
		{"a empty", "", "hello world"},
		{"b empty", "hello world", ""},
		{"a punctuation only", "!!! ???", "hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Jaccard(tt.a, tt.b); got != 0 {
				t.Errorf("Jaccard() = %v, want 0", got)
			}
		})
	}
}

func TestJaccardPartialOverlap(t *testing.T) {
	// {the, quick, brown, fox} vs {the, slow, brown, cat}: 2 shared of 6 union.
	got := Jaccard("the quick brown fox", "the slow brown cat")
	want := 2.0 / 6.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Jaccard(partial) = %v, want %v", got, want)
	}
}

func TestJaccardSymmetric(t *testing.T) {
	a := "hello world program"
	b := "world program test"
	if Jaccard(a, b) != Jaccard(b, a) {
		t.Errorf("Jaccard not symmetric")
	}
}

func TestJaccardCaseAndPunctuationInsensitive(t *testing.T) {
	got := Jaccard("Hello, World!", "hello world")
	if got != 1.0 {
		t.Errorf("Jaccard(case/punct) = %v, want 1.0", got)
	}
}

func TestJaccardNonASCII(t *testing.T) {
	title := "Полиция остановила машину"
	if got := Jaccard(title, title); got != 1.0 {
		t.Errorf("Jaccard(identical cyrillic) = %v, want 1.0", got)
	}
	// {полиция, остановила, машину} vs {полиция, преследует, машину}: 2 of 4.
	got := Jaccard(title, "Полиция преследует машину")
	want := 2.0 / 4.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Jaccard(cyrillic overlap) = %v, want %v", got, want)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple words",
			input: "Hello World",
			want:  []string{"hello", "world"},
		},
		{
			name:  "keeps short tokens",
			input: "a to the quick fox",
			want:  []string{"a", "to", "the", "quick", "fox"},
		},
		{
			name:  "handles punctuation",
			input: "Hello, World! How are you?",
			want:  []string{"hello", "world", "how", "are", "you"},
		},
		{
			name:  "handles numbers",
			input: "test123 456test",
			want:  []string{"test123", "456test"},
		},
		{
			name:  "empty string",
			input: "",
			want:  []string{},
		},
		{
			name:  "cyrillic",
			input: "Полиция остановила машину",
			want:  []string{"полиция", "остановила", "машину"},
		},
		{
			name:  "accented latin",
			input: "Poursuite à Montréal",
			want:  []string{"poursuite", "à", "montréal"},
		},
		{
			name:  "cjk with ascii",
			input: "警察 dashcam 追跡",
			want:  []string{"警察", "dashcam", "追跡"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize() = %v (len %d), want %v (len %d)",
					got, len(got), tt.want, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTokenSetUnique(t *testing.T) {
	set := TokenSet("hello hello world world world")
	if len(set) != 2 {
		t.Errorf("TokenSet() len = %d, want 2", len(set))
	}
}

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Traffic Stop", "traffic_stop"},
		{"traffic_stop", "traffic_stop"},
		{"", "unknown"},
		{"!!!", "unknown"},
		{"body-cam", "body-cam"},
		{"News  24/7", "news_24_7"},
		{"  Pursuit  ", "pursuit"},
	}

	for _, tt := range tests {
		if got := CanonicalKey(tt.input); got != tt.want {
			t.Errorf("CanonicalKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
