// Package util provides the small generic helpers flowkit workflows share:
// list sampling and splitting, environment string formatting, short hashes
// and ids, and JSON/stdio output.
package util
