// Package errs define custom error types and utilities.
//
// Its purpose is to create specific error structures
// (HTTPError for API responses) to ensure the client receives
// meaningful and consistent error bodies:
//
//   - 404 and other single-message failures: {"error": "..."}
//   - 400 validation / integrity failures:    {"errors": ["...", ...]}
package errs
