// Package utils provides internal utility functions for the ekitan-modify tool.
// This package is not intended to be imported by external code.
//
// It contains:
//   - Clock parsing and leg duration formatting
//   - Input text decoding for legacy Japanese encodings
//   - Logging initialization
package utils
