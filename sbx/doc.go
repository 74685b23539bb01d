// Package sbx stores the code to decode, verify and encode Soundbox flash archives.
//
// An archive starts with a table of 32-byte entries. The first entry describes the
// root directory and the following ones describe files; the table ends at the entry
// whose marker is MarkerLast (or at the last complete slot). Payloads follow the
// table, each file padded with 0xFF to a multiple of 16 bytes.
package sbx
