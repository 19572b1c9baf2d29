// Package patterns provides the compiled manipulation-signal pattern library.
//
// The library maps each supported language to eight fixed signal categories
// (urgency, fear, authority, isolation, flattery, coercion, misinformation,
// surrender), each category holding an ordered list of case-insensitive,
// word-bounded regular expressions. A Library is compiled once and is
// immutable afterwards; reloading an extension pack produces a new Library
// that replaces the old one wholesale.
//
// The built-in tables cover Spanish, English and Portuguese. An optional
// YAML extension pack can append patterns and detector marker words on top
// of the built-ins; it can never remove or replace them.
package patterns
