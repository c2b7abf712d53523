package form

import (
	"context"
	"errors"
	"sync"

	"github.com/webshoplabs/product-form-api/internal/catalog"
	"github.com/webshoplabs/product-form-api/pkg/logger"
)

type catalogReader interface {
	Categories(ctx context.Context) ([]catalog.Category, error)
	ProductsByID(ctx context.Context, id string) ([]catalog.Product, error)
}

// Loader fetches the reference data and the entity under edit. Both fetches
// degrade instead of failing: the form must render with empty options or
// blank fields rather than not at all.
type Loader struct {
	api    catalogReader
	logger *logger.Logger
}

func NewLoader(api catalogReader, logg *logger.Logger) (*Loader, error) {
	if api == nil {
		return nil, errors.New("catalog reader required")
	}
	if logg == nil {
		return nil, errors.New("logger required")
	}
	return &Loader{api: api, logger: logg}, nil
}

// ReferenceData returns the category taxonomy, or an empty slice when the
// fetch fails. The failure is logged at this boundary and goes no further.
func (l *Loader) ReferenceData(ctx context.Context) []catalog.Category {
	categories, err := l.api.Categories(ctx)
	if err != nil {
		l.logger.Error(ctx, "failed to fetch form categories", err)
		return []catalog.Category{}
	}
	return categories
}

// Entity returns the form state for the product with the given id. The
// filtered query answers with a collection; the first record wins. A failed
// fetch or an empty result yields the zero state so the form renders blank.
// The empty case is guarded explicitly and never touches element zero.
func (l *Loader) Entity(ctx context.Context, id string) FormState {
	ctx = l.logger.WithProductID(ctx, id)

	records, err := l.api.ProductsByID(ctx, id)
	if err != nil {
		l.logger.Error(ctx, "failed to fetch product data", err)
		return FormState{}
	}
	if len(records) == 0 {
		l.logger.Warn(ctx, "product query returned no records, rendering blank form")
		return FormState{}
	}
	return FromProduct(records[0])
}

// Load runs the reference and entity fetches concurrently and joins before
// returning: rendering never starts with partial data. An empty id means
// create mode and skips the entity fetch entirely.
func (l *Loader) Load(ctx context.Context, id string) ([]catalog.Category, FormState) {
	var (
		wg         sync.WaitGroup
		categories []catalog.Category
		state      FormState
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		categories = l.ReferenceData(ctx)
	}()

	if id != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			state = l.Entity(ctx, id)
		}()
	}

	wg.Wait()
	return categories, state
}
