package form

import (
	"html"

	"github.com/webshoplabs/product-form-api/internal/catalog"
)

// MediaItem is one attached image: the hosted link and the display name the
// user knows it by. Items have no stable id; identity is the item's position
// in the ordered list.
type MediaItem struct {
	URL    string `json:"url"`
	Source string `json:"source"`
}

// FormState is the in-memory model of every editable field. It seeds the
// initial render and is never written back to afterwards: once the form is
// on screen the live controls are authoritative and the reconciler rebuilds
// a fresh payload from them on submit.
//
// Numeric fields are pointers so an unset value renders as an empty control
// instead of a literal "0".
type FormState struct {
	Title       string
	Description string
	Quantity    *float64
	Subcategory string
	Status      *float64
	Price       *float64
	Discount    *float64
	Images      []MediaItem
}

// FromProduct extracts the recognized field subset from a catalog record and
// neutralizes markup in every string-typed field before the values can reach
// a template. Image url/source pairs are escaped later, at render time, so
// uploaded items get the same treatment.
func FromProduct(p catalog.Product) FormState {
	state := FormState{
		Title:       html.EscapeString(p.Title),
		Description: html.EscapeString(p.Description),
		Quantity:    p.Quantity,
		Subcategory: html.EscapeString(p.Subcategory),
		Status:      p.Status,
		Price:       p.Price,
		Discount:    p.Discount,
	}
	for _, img := range p.Images {
		state.Images = append(state.Images, MediaItem{URL: img.URL, Source: img.Source})
	}
	return state
}
