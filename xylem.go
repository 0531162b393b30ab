// Package xylem parses XML 1.x documents, including an internal DTD
// subset, into a tree of nodes.
//
// Entity references are expanded while parsing. Expansion splices the
// replacement text into the input and parses it in place, and a depth
// guard stops recursive or runaway definitions. External entities are
// never fetched.
package xylem

const Version = "0.0.1"
