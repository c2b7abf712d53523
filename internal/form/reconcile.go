package form

import (
	"net/url"
	"strconv"

	"github.com/webshoplabs/product-form-api/internal/catalog"
)

// The submitted control values, not the FormState that seeded the render,
// are the source of truth at save time: the user may have edited any field
// or dragged the media list into a new order since first render. BuildPayload
// therefore reads everything from the submitted form, which preserves the
// live DOM order of repeated inputs.

// BuildPayload flattens the submitted controls into the catalog save body.
// Scalar fields are read by name; the numeric subset is coerced so a blank
// control becomes 0, never NaN or an absent key. The media list is rebuilt
// by zipping the url and source inputs index-for-index in submitted order.
func BuildPayload(values url.Values, productID string) catalog.SavePayload {
	payload := catalog.SavePayload{
		Title:       values.Get("title"),
		Description: values.Get("description"),
		Subcategory: values.Get("subcategory"),
		Quantity:    coerceNumber(values.Get("quantity")),
		Price:       coerceNumber(values.Get("price")),
		Status:      coerceNumber(values.Get("status")),
		Discount:    coerceNumber(values.Get("discount")),
		Images:      zipMedia(values["url"], values["source"]),
	}
	if productID != "" {
		payload.ID = productID
	}
	return payload
}

// coerceNumber parses a numeric control value. Empty and unparseable values
// both coerce to 0 so the payload never carries NaN or a missing field.
func coerceNumber(raw string) float64 {
	if raw == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return parsed
}

// zipMedia pairs the url and source sequences positionally. The renderer and
// the upload fragment always emit the two inputs together, so the counts
// match for any form this service produced; a hand-crafted submission with
// mismatched counts is clamped to the shorter side instead of panicking.
func zipMedia(urls, sources []string) []catalog.Image {
	n := len(urls)
	if len(sources) < n {
		n = len(sources)
	}
	items := make([]catalog.Image, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, catalog.Image{URL: urls[i], Source: sources[i]})
	}
	return items
}
