// Package search provides the orchestrator that wires the pluggable
// sanitizer, tokenizer, index strategy and search index together. It owns
// the document collection and the set of searchable fields, and drives both
// indexing and querying.
package search

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/memsearch/memsearch/index"
	"github.com/memsearch/memsearch/model"
	"github.com/memsearch/memsearch/sanitizer"
	"github.com/memsearch/memsearch/strategy"
	"github.com/memsearch/memsearch/tokenizer"
)

var log = logrus.StandardLogger()

// SetLogger overrides the logger used for debug tracing. The library only
// logs at debug level, so it is silent under the default configuration.
func SetLogger(logger *logrus.Logger) {
	log = logger
}

// Search indexes documents over a set of searchable fields and answers
// multi-token queries. Strategies may be swapped only before the first
// document or field is indexed; afterwards the configuration is locked and
// setters return a ConfigurationError.
//
// A single instance is not safe for concurrent use; callers in a
// multi-threaded host must serialize access themselves.
type Search struct {
	uidField         model.FieldPath
	documents        []model.Document
	searchableFields []model.FieldPath

	indexStrategy strategy.IndexStrategy
	sanitizer     sanitizer.Sanitizer
	searchIndex   index.SearchIndex
	tokenizer     tokenizer.Tokenizer

	initialized bool
}

// New creates a Search instance keyed by the given UID field. A single
// segment names a top-level field (segments containing dots are split into
// a path); multiple segments address a nested value. Returns
// ErrMissingUIDField when no field is given.
//
// Defaults: prefix index strategy, TF-IDF search index, lower-case
// sanitizer, simple tokenizer.
func New(uidField ...string) (*Search, error) {
	path := parseFieldArgs(uidField)
	if len(path) == 0 {
		return nil, ErrMissingUIDField
	}

	return &Search{
		uidField:         path,
		documents:        make([]model.Document, 0),
		searchableFields: make([]model.FieldPath, 0),
		indexStrategy:    strategy.NewPrefix(),
		sanitizer:        sanitizer.NewLowerCase(),
		searchIndex:      index.NewTfIdf(),
		tokenizer:        tokenizer.NewSimple(),
	}, nil
}

// SetIndexStrategy overrides the default index strategy.
func (s *Search) SetIndexStrategy(v strategy.IndexStrategy) error {
	if s.initialized {
		return newConfigurationError("index strategy")
	}
	s.indexStrategy = v
	return nil
}

// IndexStrategy returns the active index strategy, e.g. for constructing a
// consistent highlighter.
func (s *Search) IndexStrategy() strategy.IndexStrategy { return s.indexStrategy }

// SetSanitizer overrides the default text sanitizing strategy.
func (s *Search) SetSanitizer(v sanitizer.Sanitizer) error {
	if s.initialized {
		return newConfigurationError("sanitizer")
	}
	s.sanitizer = v
	return nil
}

// Sanitizer returns the active sanitizer.
func (s *Search) Sanitizer() sanitizer.Sanitizer { return s.sanitizer }

// SetSearchIndex overrides the default search index.
func (s *Search) SetSearchIndex(v index.SearchIndex) error {
	if s.initialized {
		return newConfigurationError("search index")
	}
	s.searchIndex = v
	return nil
}

// SearchIndex returns the active search index.
func (s *Search) SearchIndex() index.SearchIndex { return s.searchIndex }

// SetTokenizer overrides the default text tokenizing strategy.
func (s *Search) SetTokenizer(v tokenizer.Tokenizer) error {
	if s.initialized {
		return newConfigurationError("tokenizer")
	}
	s.tokenizer = v
	return nil
}

// Tokenizer returns the active tokenizer.
func (s *Search) Tokenizer() tokenizer.Tokenizer { return s.tokenizer }

// Documents returns the current document collection in insertion order.
func (s *Search) Documents() []model.Document {
	return s.documents
}

// AddDocument appends a document to the collection and immediately indexes
// it against all currently registered searchable fields.
func (s *Search) AddDocument(doc model.Document) {
	s.documents = append(s.documents, doc)
	s.indexDocuments([]model.Document{doc}, s.searchableFields)
}

// AddDocuments appends documents to the collection and immediately indexes
// each against all currently registered searchable fields.
func (s *Search) AddDocuments(docs []model.Document) {
	s.documents = append(s.documents, docs...)
	s.indexDocuments(docs, s.searchableFields)
}

// AddIndex registers a new searchable field and indexes all existing
// documents against it, so a field added late still makes every prior
// document searchable on it. A single segment names a top-level field
// (dots split into a path); multiple segments address a nested value.
func (s *Search) AddIndex(field ...string) {
	path := parseFieldArgs(field)
	s.searchableFields = append(s.searchableFields, path)
	s.indexDocuments(s.documents, []model.FieldPath{path})
}

// Search sanitizes and tokenizes the query text, then delegates to the
// active search index with the full document collection.
func (s *Search) Search(query string) []model.Document {
	tokens := s.tokenizer.Tokenize(s.sanitizer.Sanitize(query))
	results := s.searchIndex.Search(tokens, s.documents)

	log.WithFields(logrus.Fields{
		"query_id": uuid.NewString(),
		"tokens":   len(tokens),
		"hits":     len(results),
	}).Debug("search completed")

	return results
}

// indexDocuments runs the indexing pass: per document and field, sanitize,
// tokenize, expand each token and store every expanded key. Missing fields
// and values without a textual representation are skipped silently; the
// document stays searchable on its other fields.
func (s *Search) indexDocuments(docs []model.Document, fields []model.FieldPath) {
	s.initialized = true

	for _, doc := range docs {
		uidValue, ok := doc.Resolve(s.uidField)
		if !ok {
			log.WithField("uid_field", s.uidField).Debug("document missing uid value, skipped")
			continue
		}
		uid, ok := model.Stringify(uidValue)
		if !ok {
			log.WithField("uid_field", s.uidField).Debug("document uid value has no textual form, skipped")
			continue
		}

		for _, field := range fields {
			value, ok := doc.Resolve(field)
			if !ok {
				log.WithFields(logrus.Fields{"uid": uid, "field": field}).Debug("field missing, skipped")
				continue
			}
			text, ok := model.Stringify(value)
			if !ok {
				log.WithFields(logrus.Fields{"uid": uid, "field": field}).Debug("field value has no textual form, skipped")
				continue
			}

			for _, token := range s.tokenizer.Tokenize(s.sanitizer.Sanitize(text)) {
				for _, key := range s.indexStrategy.ExpandToken(token) {
					s.searchIndex.Index(key, uid, doc)
				}
			}
		}
	}
}

func parseFieldArgs(segments []string) model.FieldPath {
	if len(segments) == 1 {
		return model.ParseField(segments[0])
	}
	return model.Path(segments...)
}
