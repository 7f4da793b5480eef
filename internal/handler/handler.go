// Package handler is the first layer. The first entry point
// for business logic after the router.
//
// It parses requests, handles input validation using the
// validation package, and calls the appropriate service layer.
// It acts as the interface between the HTTP request and the core
// business logic.
package handler

import "github.com/deppfellow/superheroes/internal/validation"

// EmptyRequest is the request type of endpoints that take no input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}

// IDRequest carries a numeric :id path parameter.
type IDRequest struct {
	ID int64 `param:"id"`
}

func (r *IDRequest) Validate() error {
	return validation.Struct(r)
}
