// Package formatter writes transducer output as newline-separated text.
//
// Duration notes can be highlighted when the output is a terminal; the line
// text itself is always written unchanged.
package formatter
