package catalog

// Category is one taxonomy entry returned by the categories endpoint with
// its subcategory references expanded.
type Category struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Subcategories []Subcategory `json:"subcategories"`
}

type Subcategory struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Product is the full entity record as the catalog API returns it. Numeric
// fields are pointers so an absent field is distinguishable from zero.
type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Quantity    *float64 `json:"quantity"`
	Subcategory string   `json:"subcategory"`
	Status      *float64 `json:"status"`
	Price       *float64 `json:"price"`
	Discount    *float64 `json:"discount"`
	Images      []Image  `json:"images"`
}

type Image struct {
	URL    string `json:"url"`
	Source string `json:"source"`
}

// SavePayload is the flattened body sent on create and update. Blank numeric
// controls have already been coerced to 0 by the reconciler, so plain
// float64 fields are correct here.
type SavePayload struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Subcategory string  `json:"subcategory"`
	Status      float64 `json:"status"`
	Price       float64 `json:"price"`
	Discount    float64 `json:"discount"`
	Images      []Image `json:"images"`
}

// SaveResult carries the server-assigned id back to the completion signal.
type SaveResult struct {
	ID string `json:"id"`
}
