// Package index provides the inverted index abstraction: storage of
// (key, uid, document) postings and retrieval of documents for a token
// sequence. Two variants are available, an unordered conjunctive index and a
// TF-IDF ranked index.
package index

import "github.com/memsearch/memsearch/model"

// SearchIndex is an inverted index mapping index keys to the documents that
// produced them.
//
// Index records that a document produced the given key; calling it again for
// the same (key, uid) pair is idempotent storage-wise, though the ranked
// variant counts repeats as term frequency. Search evaluates a token
// sequence against the stored postings; tokens are looked up literally as
// keys, consistent with how the expansion strategy was applied at indexing
// time. The corpus is the full document collection, passed in so the index
// itself never owns documents.
type SearchIndex interface {
	Index(key, uid string, doc model.Document)
	Search(tokens []string, corpus []model.Document) []model.Document
}
