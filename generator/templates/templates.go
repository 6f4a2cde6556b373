// Package templates renders the generated project's source files from a
// resolved options record. Rendering is pure string assembly: identical
// options produce byte-identical output, and every conditional section is
// paired with the import line it needs.
package templates
