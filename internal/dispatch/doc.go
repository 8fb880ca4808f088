// Package dispatch resolves user typed command names against a command table.
//
// Resolution is case-insensitive. When nothing matches exactly, the closest
// canonical names are offered as suggestions using the Ratcliff/Obershelp
// similarity ratio computed by go-difflib.
package dispatch
