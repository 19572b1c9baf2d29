// Package language implements lexical marker-overlap language detection for
// guard messages.
//
// Detection is deliberately crude: the message is tokenized into lowercase
// word tokens and intersected with three fixed marker-word sets. It exists to
// route a message to the right pattern table, not to classify arbitrary text;
// an explicit language hint always bypasses it.
package language
