// Package store holds the dashboard application state: a view slice with
// pagination, sort, filter and fetch status, and an auth slice with the
// active token. Reducers are pure; Store serialises dispatches.
package store

import "inventory_dashboard/internal/models"

// Intent is a named request to transition state.
type Intent interface {
	intent()
}

// View intents.
type (
	SetPage struct {
		Page int
	}
	SetPageSize struct {
		Size int
	}
	SetSort struct {
		Field string
	}
	SetFilter struct {
		Text string
	}
	FetchPending struct {
		Seq uint64
	}
	FetchFulfilled struct {
		Seq   uint64
		Items []models.Product
		Total int
	}
	FetchRejected struct {
		Seq     uint64
		Message string
	}
	// ParamsRestored replaces the query parameters with previously saved ones.
	ParamsRestored struct {
		Params models.ViewParams
	}
)

// Auth intents.
type (
	LoginSuccess struct {
		Token string
	}
	Logout struct{}
)

func (SetPage) intent()        {}
func (SetPageSize) intent()    {}
func (SetSort) intent()        {}
func (SetFilter) intent()      {}
func (FetchPending) intent()   {}
func (FetchFulfilled) intent() {}
func (FetchRejected) intent()  {}
func (ParamsRestored) intent() {}
func (LoginSuccess) intent()   {}
func (Logout) intent()         {}
