package lexical

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestIDF(t *testing.T) {
	corpus := NewCorpus([][]string{
		{"ensino", "infantil"},
		{"ensino", "design"},
		{"marketing"},
	})

	t.Run("term in every relevant doc", func(t *testing.T) {
		// "ensino" is in 2 of 3 docs: ln(3/2).
		if got, want := corpus.IDF("ensino"), math.Log(1.5); !almostEqual(got, want) {
			t.Errorf("IDF(ensino) = %v, want %v", got, want)
		}
	})

	t.Run("rare term scores higher", func(t *testing.T) {
		if corpus.IDF("marketing") <= corpus.IDF("ensino") {
			t.Error("rarer term should have higher IDF")
		}
	})

	t.Run("absent term scores zero", func(t *testing.T) {
		if got := corpus.IDF("futebol"); got != 0 {
			t.Errorf("IDF(absent) = %v, want 0", got)
		}
	})
}

func TestVector(t *testing.T) {
	corpus := NewCorpus([][]string{
		{"ensino", "ensino", "design"},
		{"marketing"},
	})

	vec := corpus.Vector(0)
	// tf(ensino) = 2/3, idf = ln(2/1).
	if got, want := vec["ensino"], 2.0/3.0*math.Log(2); !almostEqual(got, want) {
		t.Errorf("vector[ensino] = %v, want %v", got, want)
	}
	if _, ok := vec["marketing"]; ok {
		t.Error("vector should not carry terms absent from the document")
	}

	t.Run("out of range index", func(t *testing.T) {
		if got := corpus.Vector(5); len(got) != 0 {
			t.Errorf("Vector(5) = %v, want empty", got)
		}
	})

	t.Run("empty document", func(t *testing.T) {
		c := NewCorpus([][]string{{}, {"ensino"}})
		if got := c.Vector(0); len(got) != 0 {
			t.Errorf("Vector of empty doc = %v, want empty", got)
		}
	})
}

func TestCosineSimilarity(t *testing.T) {
	v1 := Vector{"a": 1, "b": 2}
	v2 := Vector{"a": 2, "c": 1}

	t.Run("symmetric", func(t *testing.T) {
		if !almostEqual(CosineSimilarity(v1, v2), CosineSimilarity(v2, v1)) {
			t.Errorf("cosine(v1,v2) = %v, cosine(v2,v1) = %v, want equal",
				CosineSimilarity(v1, v2), CosineSimilarity(v2, v1))
		}
	})

	t.Run("self similarity is one", func(t *testing.T) {
		if got := CosineSimilarity(v1, v1); !almostEqual(got, 1) {
			t.Errorf("cosine(v,v) = %v, want 1", got)
		}
	})

	t.Run("orthogonal vectors score zero", func(t *testing.T) {
		if got := CosineSimilarity(Vector{"a": 1}, Vector{"b": 1}); got != 0 {
			t.Errorf("cosine of orthogonal vectors = %v, want 0", got)
		}
	})

	t.Run("zero norm guards division", func(t *testing.T) {
		if got := CosineSimilarity(Vector{}, v1); got != 0 {
			t.Errorf("cosine with zero vector = %v, want 0", got)
		}
		if got := CosineSimilarity(v1, Vector{}); got != 0 {
			t.Errorf("cosine with zero vector = %v, want 0", got)
		}
	})
}

func TestSimilarityScores(t *testing.T) {
	profile := []string{"ensino", "criancas", "educacao"}
	postings := [][]string{
		{"ensino", "educacao", "infantil"},
		{"contabilidade", "financas"},
	}

	scores := SimilarityScores(profile, postings)
	if len(scores) != 2 {
		t.Fatalf("got %d scores, want 2", len(scores))
	}
	if scores[0] <= scores[1] {
		t.Errorf("overlapping posting scored %v, disjoint scored %v; want first higher", scores[0], scores[1])
	}
	if scores[1] != 0 {
		t.Errorf("disjoint posting score = %v, want 0", scores[1])
	}
	for i, s := range scores {
		if s < 0 || s > 1+epsilon {
			t.Errorf("score[%d] = %v out of [0,1]", i, s)
		}
	}
}

func TestSimilarityScores_EmptyProfile(t *testing.T) {
	scores := SimilarityScores(nil, [][]string{{"ensino"}})
	if scores[0] != 0 {
		t.Errorf("empty profile similarity = %v, want 0", scores[0])
	}
}
