// Package util provides small shared helpers: size parsing, filename and
// string sanitization, and generic slice/string utilities.
package util
