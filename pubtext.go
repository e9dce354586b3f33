// Package pubtext extracts the Abstract, Results and Methods sections of
// biomedical journal articles from heterogeneous publisher HTML and XML and
// serializes them as normalized plain text for downstream NLP tooling.
//
// This package contains domain types, interfaces and the pure text logic
// (heading vocabularies, the numeric normalizer, the record format).
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, etree/, sqlite/).
package pubtext
