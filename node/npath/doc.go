// Package npath lexes path expressions and builds node path strings.
//
// A path expression is a slash separated list of segments:
//
//	path      := ["/"] segment ("/" segment)*
//	segment   := ".." | "." | idref | member
//	idref     := "@" name
//	member    := name ("[" integer "]")*
//
// A leading "/" anchors the expression at the root. Segments are trimmed
// of surrounding white space. Names may contain anything except "/" and
// "[".
//
// Node paths, the strings identifying where a node sits in its tree, are
// written with dots and brackets instead: "a.b[2].c".
package npath
