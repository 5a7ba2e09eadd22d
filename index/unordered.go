package index

import "github.com/memsearch/memsearch/model"

// Unordered is a conjunctive (AND) search index: a query matches the
// documents indexed under every query token, returned without any meaningful
// rank or order.
type Unordered struct {
	keyToUIDToDocument map[string]map[string]model.Document
}

// NewUnordered creates an empty unordered search index.
func NewUnordered() *Unordered {
	return &Unordered{
		keyToUIDToDocument: make(map[string]map[string]model.Document),
	}
}

func (idx *Unordered) Index(key, uid string, doc model.Document) {
	postings, ok := idx.keyToUIDToDocument[key]
	if !ok {
		postings = make(map[string]model.Document)
		idx.keyToUIDToDocument[key] = postings
	}
	postings[uid] = doc
}

// Search intersects the posting sets of all tokens. An empty token sequence
// matches nothing, and a single token with no postings short-circuits the
// whole query to an empty result. Result order is unspecified.
func (idx *Unordered) Search(tokens []string, _ []model.Document) []model.Document {
	if len(tokens) == 0 {
		return []model.Document{}
	}

	var intersection map[string]model.Document
	for i, token := range tokens {
		postings, ok := idx.keyToUIDToDocument[token]
		if !ok {
			return []model.Document{}
		}

		if i == 0 {
			intersection = make(map[string]model.Document, len(postings))
			for uid, doc := range postings {
				intersection[uid] = doc
			}
			continue
		}

		for uid := range intersection {
			if _, ok := postings[uid]; !ok {
				delete(intersection, uid)
			}
		}
	}

	documents := make([]model.Document, 0, len(intersection))
	for _, doc := range intersection {
		documents = append(documents, doc)
	}
	return documents
}
