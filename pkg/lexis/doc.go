// Package lexis provides lexical analyses over free-form text:
// concordance windows, collocation counts, sentence-level co-occurrence
// and part-of-speech category mapping.
//
// The analyses live in their own packages (concordance, collocation,
// cooccurrence, pos) and take their collaborators explicitly. Analyzer
// bundles a tokenizer, a stoplist, a tagger and an optional run store
// behind one value.
package lexis
