package index

import (
	"math"
	"sort"

	"github.com/memsearch/memsearch/model"
)

// tfIdfPosting records one (key, uid) pair: the document reference and how
// many times the key was produced for that document across all indexed
// fields.
type tfIdfPosting struct {
	doc           model.Document
	termFrequency int
}

// TfIdf is a frequency-ranked search index. A query matches the union of
// documents indexed under any query token (OR semantics for recall), scored
// by classic TF-IDF: the sum over query tokens of term frequency times
// log(1 + N/df). Results are ordered by descending score; ties keep the
// order in which documents were first indexed, so results are reproducible
// across runs.
type TfIdf struct {
	keyToPostings map[string]map[string]*tfIdfPosting
	uidOrder      map[string]int // first-posting sequence per uid, breaks score ties
}

// NewTfIdf creates an empty TF-IDF search index.
func NewTfIdf() *TfIdf {
	return &TfIdf{
		keyToPostings: make(map[string]map[string]*tfIdfPosting),
		uidOrder:      make(map[string]int),
	}
}

func (idx *TfIdf) Index(key, uid string, doc model.Document) {
	postings, ok := idx.keyToPostings[key]
	if !ok {
		postings = make(map[string]*tfIdfPosting)
		idx.keyToPostings[key] = postings
	}
	if posting, ok := postings[uid]; ok {
		posting.termFrequency++
		posting.doc = doc
	} else {
		postings[uid] = &tfIdfPosting{doc: doc, termFrequency: 1}
	}
	if _, ok := idx.uidOrder[uid]; !ok {
		idx.uidOrder[uid] = len(idx.uidOrder)
	}
}

// Search scores every document matching at least one token and returns them
// sorted by descending TF-IDF score. Tokens are looked up literally as
// index keys; tokens with no postings simply contribute nothing.
func (idx *TfIdf) Search(tokens []string, corpus []model.Document) []model.Document {
	if len(tokens) == 0 {
		return []model.Document{}
	}

	type candidate struct {
		uid   string
		doc   model.Document
		score float64
	}

	totalDocs := float64(len(corpus))
	scored := make(map[string]*candidate)
	for _, token := range tokens {
		postings, ok := idx.keyToPostings[token]
		if !ok {
			continue
		}
		// Document frequency is the number of distinct uids holding this
		// key; it is at least 1 whenever the key exists.
		idf := math.Log(1 + totalDocs/float64(len(postings)))
		for uid, posting := range postings {
			c, ok := scored[uid]
			if !ok {
				c = &candidate{uid: uid, doc: posting.doc}
				scored[uid] = c
			}
			c.score += float64(posting.termFrequency) * idf
		}
	}

	candidates := make([]*candidate, 0, len(scored))
	for _, c := range scored {
		candidates = append(candidates, c)
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return idx.uidOrder[candidates[i].uid] < idx.uidOrder[candidates[j].uid]
	})

	documents := make([]model.Document, len(candidates))
	for i, c := range candidates {
		documents[i] = c.doc
	}
	return documents
}
