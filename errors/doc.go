// Package errors provides the structured error type shared by flowkit
// packages. Errors carry a machine-readable code plus optional details and
// an underlying cause, and work with the standard errors.Is / errors.As.
package errors
