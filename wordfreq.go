// Package wordfreq reports the most frequent words in one named section of
// a web page. It fetches the page, parses it into a document tree, extracts
// the text of the section bounded by level-2 headings, and ranks the words.
//
// This package contains domain types, interfaces and the pure extraction
// and ranking logic following Ben Johnson's Standard Package Layout.
// Implementations of the collaborators live in subdirectories named after
// their primary dependency (e.g., http/, goquery/, etree/, rod/).
package wordfreq
