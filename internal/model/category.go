// Package model defines the catalog entities shared by the client and the controller.
package model

// Category is a named grouping that products reference.
// ID is server-assigned and never changes after creation.
type Category struct {
	ID   string
	Name string
}
