package normalizer

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Design", "design"},
		{"strips accents", "Educação", "educacao"},
		{"accent and plain variants agree", "Gestão de Projetos", "gestao de projetos"},
		{"trims whitespace", "  Marketing  ", "marketing"},
		{"empty string", "", ""},
		{"already normalized", "comunicacao", "comunicacao"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_AccentInsensitive(t *testing.T) {
	if Normalize("Educação") != Normalize("educacao") {
		t.Errorf("Normalize(\"Educação\") = %q, Normalize(\"educacao\") = %q, want equal",
			Normalize("Educação"), Normalize("educacao"))
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"Educação", "  Redes Sociais ", "ENSINO", "ação"}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple list", "Design,Marketing", []string{"design", "marketing"}},
		{"trims and normalizes", " Ensino , Comunicação ", []string{"ensino", "comunicacao"}},
		{"drops empty tokens", "react,,node,", []string{"react", "node"}},
		{"collapses duplicates", "Design,design,DESIGN", []string{"design"}},
		{"empty input", "", []string{}},
		{"only separators", ",,,", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitList(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitList(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"splits on whitespace", "ensino de programacao", []string{"ensino", "programacao"}},
		{"drops short tokens", "eu dou aulas de python", []string{"dou", "aulas", "python"}},
		{"strips punctuation", "React/Node.js, e design!", []string{"react", "node", "design"}},
		{"strips accents", "Gestão de Projetos", []string{"gestao", "projetos"}},
		{"empty text", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tokenize(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeSet(t *testing.T) {
	got := NormalizeSet([]string{"Aracaju", "ARACAJU", "", "São Cristóvão"})
	want := []string{"aracaju", "sao cristovao"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeSet() = %v, want %v", got, want)
	}
}
