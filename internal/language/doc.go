// Package language normalizes the caller's language hint into the ISO 639-1
// form the alignment engine expects.
package language
