// Package links implements the link collection and the ordering rules of the
// public page: active links sorted by their order attribute, ties kept in
// insertion order.
package links

import "time"

type Link struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Icon      string    `json:"icon"`
	Order     int       `json:"order"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateParams struct {
	Title    string
	URL      string
	Icon     string
	Order    int
	IsActive *bool // defaults to true when nil
}

// UpdateParams is a shallow merge: nil fields keep the stored value.
type UpdateParams struct {
	Title    *string
	URL      *string
	Icon     *string
	Order    *int
	IsActive *bool
}
