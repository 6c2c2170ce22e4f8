// Package table is a typed access layer over delimited text files. Load
// detects the file's charset and delimiter, parses the records into
// typed cells, and returns a Table exposing filter, update, insert and
// delete operations with explicit save-back.
//
// Filters are pure: they return a new Table sharing configuration with
// the source and never touch the backing file. Mutations edit the row
// store in place and persist only on Save/SaveTo. The row store carries
// no internal locking; callers interleaving mutations from multiple
// goroutines must serialize access themselves.
package table
