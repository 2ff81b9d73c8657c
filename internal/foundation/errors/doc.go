// Package errors provides the classified error primitives used across synthdocs.
//
// Every failure that can abort a build is a ClassifiedError carrying a category,
// a severity and structured context. The CLI adapter turns categories into exit codes.
//
// Example usage:
//
//	err := errors.NewError(errors.CategoryValidation, "token has no matching synth").
//		WithContext("symbol", token.Symbol).
//		Build()
package errors
