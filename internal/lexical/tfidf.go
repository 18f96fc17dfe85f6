// Package lexical implements TF-IDF vectorization and cosine similarity over
// free-text profile and posting fields. It supplies the recommendation path's
// similarity signal when structured skill data is missing or too sparse.
//
// The corpus for one query is the volunteer's profile text plus every
// candidate posting's concatenated title, description and skills text; the
// corpus is rebuilt per query and holds no state across invocations.
package lexical

import "math"

// Vector is a sparse TF-IDF vector: term -> weight. Terms absent from the
// map have weight 0.
type Vector map[string]float64

// Corpus holds tokenized documents and the per-term document frequencies
// derived from them.
type Corpus struct {
	docs    [][]string
	docFreq map[string]int
}

// NewCorpus builds a corpus from tokenized documents and pre-computes
// document frequencies.
func NewCorpus(docs [][]string) *Corpus {
	c := &Corpus{
		docs:    docs,
		docFreq: make(map[string]int),
	}
	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc))
		for _, token := range doc {
			seen[token] = struct{}{}
		}
		for term := range seen {
			c.docFreq[term]++
		}
	}
	return c
}

// Len returns the number of documents in the corpus.
func (c *Corpus) Len() int {
	return len(c.docs)
}

// IDF returns ln(numDocs / docsContainingTerm). A term present in no document
// scores 0 and therefore contributes nothing to similarity.
func (c *Corpus) IDF(term string) float64 {
	df := c.docFreq[term]
	if df == 0 || len(c.docs) == 0 {
		return 0
	}
	return math.Log(float64(len(c.docs)) / float64(df))
}

// Vector returns the TF-IDF vector of the document at index. Term frequency
// is the raw count divided by the document's token count. Out-of-range
// indexes and empty documents yield an empty vector.
func (c *Corpus) Vector(index int) Vector {
	if index < 0 || index >= len(c.docs) {
		return Vector{}
	}
	doc := c.docs[index]
	if len(doc) == 0 {
		return Vector{}
	}

	counts := make(map[string]int, len(doc))
	for _, token := range doc {
		counts[token]++
	}

	vec := make(Vector, len(counts))
	total := float64(len(doc))
	for term, count := range counts {
		if idf := c.IDF(term); idf != 0 {
			vec[term] = float64(count) / total * idf
		}
	}
	return vec
}

// CosineSimilarity returns the cosine of the angle between two vectors:
// dot product over the product of Euclidean norms. Defined as 0 when either
// norm is 0, guarding the divide-by-zero.
func CosineSimilarity(a, b Vector) float64 {
	var dot, normA, normB float64
	for term, weightA := range a {
		dot += weightA * b[term]
		normA += weightA * weightA
	}
	for _, weightB := range b {
		normB += weightB * weightB
	}

	denominator := math.Sqrt(normA) * math.Sqrt(normB)
	if denominator == 0 {
		return 0
	}
	return dot / denominator
}

// SimilarityScores vectorizes the profile document against every posting
// document in one shared corpus and returns the per-posting cosine
// similarities. The profile is document 0 of the corpus.
func SimilarityScores(profileTokens []string, postingTokens [][]string) []float64 {
	docs := make([][]string, 0, len(postingTokens)+1)
	docs = append(docs, profileTokens)
	docs = append(docs, postingTokens...)

	corpus := NewCorpus(docs)
	profileVec := corpus.Vector(0)

	scores := make([]float64, len(postingTokens))
	for i := range postingTokens {
		scores[i] = CosineSimilarity(profileVec, corpus.Vector(i+1))
	}
	return scores
}
