package form

import (
	"html"
	"strconv"
	"strings"
	"text/template"

	"github.com/webshoplabs/product-form-api/internal/catalog"
)

// Renderer produces the form skeleton and the media list item fragment.
//
// Entity-sourced strings arrive already escaped by the loader, so the
// templates are plain text templates: escaping happens exactly once, at the
// boundary where untrusted data enters. Values that do not pass through the
// loader (reference titles, uploaded file names) are escaped here.
type Renderer struct {
	form *template.Template
	item *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{
		form: template.Must(template.New("product-form").Parse(formTemplate)),
		item: template.Must(template.New("media-item").Parse(itemTemplate)),
	}
}

type optionView struct {
	Value    string
	Label    string
	Selected bool
}

type formView struct {
	SaveAction     string
	UploadAction   string
	ProductID      string
	Title          string
	Description    string
	Quantity       string
	Price          string
	Discount       string
	StatusActive   bool
	StatusInactive bool
	Options        []optionView
	Items          []string
}

// Form renders the complete form pre-populated from the given state, with
// the selection control restricted to subcategories and the one matching the
// state pre-selected, and the media list seeded in state order.
func (r *Renderer) Form(categories []catalog.Category, state FormState, productID, saveAction, uploadAction string) (string, error) {
	view := formView{
		SaveAction:     saveAction,
		UploadAction:   uploadAction,
		ProductID:      html.EscapeString(productID),
		Title:          state.Title,
		Description:    state.Description,
		Quantity:       formatNumber(state.Quantity),
		Price:          formatNumber(state.Price),
		Discount:       formatNumber(state.Discount),
		StatusActive:   state.Status != nil && *state.Status == 1,
		StatusInactive: state.Status != nil && *state.Status == 0,
	}

	for _, category := range categories {
		for _, sub := range category.Subcategories {
			view.Options = append(view.Options, optionView{
				Value:    html.EscapeString(sub.ID),
				Label:    html.EscapeString(category.Title) + " &gt; " + html.EscapeString(sub.Title),
				Selected: state.Subcategory == sub.ID,
			})
		}
	}

	for _, item := range state.Images {
		fragment, err := r.Item(item)
		if err != nil {
			return "", err
		}
		view.Items = append(view.Items, fragment)
	}

	var out strings.Builder
	if err := r.form.Execute(&out, view); err != nil {
		return "", err
	}
	return out.String(), nil
}

// Item renders one media list entry. The hidden url/source inputs are only
// ever emitted together, which is what keeps the reconciler's positional zip
// sound.
func (r *Renderer) Item(item MediaItem) (string, error) {
	var out strings.Builder
	err := r.item.Execute(&out, MediaItem{
		URL:    html.EscapeString(item.URL),
		Source: html.EscapeString(item.Source),
	})
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

// formatNumber renders a numeric control value: empty when unset, never the
// literal "0" or "null".
func formatNumber(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
