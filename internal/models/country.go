package models

// Country is one entry of the country catalog used to drive the
// dashboard filters.
type Country struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
}
