package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/webshoplabs/product-form-api/pkg/config"
	pkgerrors "github.com/webshoplabs/product-form-api/pkg/errors"
	"github.com/webshoplabs/product-form-api/pkg/logger"
)

const (
	categoriesPath = "/categories"
	productsPath   = "/products"
)

var (
	errBaseURLRequired = errors.New("catalog base url is required")
	errLoggerRequired  = errors.New("catalog logger is required")
)

// Client wraps the remote catalog API with centralized logging and error
// mapping. It is the only component that talks to the products and
// categories resources.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	logger     *logger.Logger
}

// NewClient validates the configuration and builds the catalog wrapper.
func NewClient(cfg config.CatalogConfig, logg *logger.Logger) (*Client, error) {
	if logg == nil {
		return nil, errLoggerRequired
	}
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		return nil, errBaseURLRequired
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("catalog base url: %w", err)
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    parsed,
		logger:     logg,
	}, nil
}

// Categories fetches the taxonomy sorted by weight with subcategory
// references expanded.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	endpoint := c.resolve(categoriesPath)
	q := endpoint.Query()
	q.Set("_sort", "weight")
	q.Set("_refs", "subcategory")
	endpoint.RawQuery = q.Encode()

	c.log(ctx, "request", "fetch_categories", nil)

	var out []Category
	if err := c.getJSON(ctx, endpoint.String(), &out); err != nil {
		c.log(ctx, "error", "fetch_categories", map[string]any{"error": err.Error()})
		return nil, pkgerrors.Wrap(pkgerrors.CodeReferenceFetch, err, "fetch categories")
	}

	c.log(ctx, "response", "fetch_categories", map[string]any{"count": len(out)})
	return out, nil
}

// ProductsByID fetches the products resource filtered by id. The backend
// answers with a collection holding zero or more records; the caller decides
// what an empty result means.
func (c *Client) ProductsByID(ctx context.Context, id string) ([]Product, error) {
	endpoint := c.resolve(productsPath)
	q := endpoint.Query()
	q.Set("id", id)
	endpoint.RawQuery = q.Encode()

	c.log(ctx, "request", "fetch_product", map[string]any{"product_id": id})

	var out []Product
	if err := c.getJSON(ctx, endpoint.String(), &out); err != nil {
		c.log(ctx, "error", "fetch_product", map[string]any{"product_id": id, "error": err.Error()})
		return nil, pkgerrors.Wrap(pkgerrors.CodeEntityFetch, err, fmt.Sprintf("fetch product %s", id))
	}

	c.log(ctx, "response", "fetch_product", map[string]any{"product_id": id, "count": len(out)})
	return out, nil
}

// Create posts the full payload to the products resource.
func (c *Client) Create(ctx context.Context, payload SavePayload) (*SaveResult, error) {
	return c.save(ctx, http.MethodPost, "create_product", payload)
}

// Update patches the products resource with a payload that includes the id.
func (c *Client) Update(ctx context.Context, payload SavePayload) (*SaveResult, error) {
	return c.save(ctx, http.MethodPatch, "update_product", payload)
}

func (c *Client) save(ctx context.Context, method, op string, payload SavePayload) (*SaveResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode product payload")
	}

	c.log(ctx, "request", op, map[string]any{"product_id": payload.ID, "title": payload.Title})

	req, err := http.NewRequestWithContext(ctx, method, c.resolve(productsPath).String(), bytes.NewReader(body))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build save request")
	}
	req.Header.Set("Content-Type", "application/json")

	var result SaveResult
	if err := c.doJSON(req, &result); err != nil {
		c.log(ctx, "error", op, map[string]any{"product_id": payload.ID, "error": err.Error()})
		return nil, pkgerrors.Wrap(pkgerrors.CodeSubmitFailed, err, fmt.Sprintf("%s failed", op))
	}

	c.log(ctx, "response", op, map[string]any{"product_id": result.ID})
	return &result, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	return c.doJSON(req, dest)
}

func (c *Client) doJSON(req *http.Request, dest any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("catalog api returned %s", resp.Status)
	}

	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode catalog response: %w", err)
	}
	return nil
}

func (c *Client) resolve(path string) *url.URL {
	ref := *c.baseURL
	ref.Path = strings.TrimSuffix(ref.Path, "/") + path
	return &ref
}

func (c *Client) log(ctx context.Context, phase, op string, fields map[string]any) {
	if c == nil || c.logger == nil {
		return
	}
	logFields := map[string]any{
		"operation": op,
		"phase":     phase,
	}
	for k, v := range fields {
		logFields[k] = v
	}
	ctx = c.logger.WithFields(ctx, logFields)
	switch phase {
	case "error":
		c.logger.Error(ctx, fmt.Sprintf("catalog %s", op), errors.New(fmt.Sprint(fields["error"])))
	default:
		c.logger.Debug(ctx, fmt.Sprintf("catalog %s", phase))
	}
}
