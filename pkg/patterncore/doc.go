// Package patterncore implements the trie-based pattern store behind an
// AIML-style matcher: insertion of pattern/that/topic categories, a
// recursive backtracking matcher honoring wildcard priority, and a
// wildcard locator that recovers captured substrings from the original
// (pre-normalization) input.
package patterncore
