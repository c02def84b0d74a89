// Package conv provides checked integer conversions for values that end up
// in fixed-width snapshot header fields or come back out of them.
package conv
