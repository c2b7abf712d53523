package form

import (
	"context"
	"errors"
	"io"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/webshoplabs/product-form-api/internal/catalog"
	"github.com/webshoplabs/product-form-api/internal/imagehost"
	pkgerrors "github.com/webshoplabs/product-form-api/pkg/errors"
	"github.com/webshoplabs/product-form-api/pkg/logger"
	"github.com/webshoplabs/product-form-api/pkg/metrics"
)

// Completion is the signal emitted after a successful save. The event name
// distinguishes create from update and the id is the one the catalog API
// assigned. Submission failures produce no Completion at all: the form stays
// on screen with user input intact for a retry.
type Completion struct {
	Event string `json:"event"`
	ID    string `json:"id"`
}

const (
	EventCreated = "product-created"
	EventUpdated = "product-updated"

	SaveAction   = "/products/save"
	UploadAction = "/products/upload"
)

// UploadResult is a hosted media item plus its rendered list fragment, ready
// for the page to append as the trailing element of the live sortable list.
type UploadResult struct {
	URL    string `json:"url"`
	Source string `json:"source"`
	Item   string `json:"item"`
}

// Service is the form controller: one instance serves all sessions since the
// per-session mutable state lives in the browser, not here.
type Service interface {
	Render(ctx context.Context, productID string) (string, error)
	Upload(ctx context.Context, fileName string, file io.Reader) (*UploadResult, error)
	Submit(ctx context.Context, values url.Values, productID string) (*Completion, error)
}

type catalogWriter interface {
	Create(ctx context.Context, payload catalog.SavePayload) (*catalog.SaveResult, error)
	Update(ctx context.Context, payload catalog.SavePayload) (*catalog.SaveResult, error)
}

type uploader interface {
	Upload(ctx context.Context, fileName string, file io.Reader) (*imagehost.Hosted, error)
}

type service struct {
	loader   *Loader
	writer   catalogWriter
	uploads  uploader
	renderer *Renderer
	metrics  *metrics.FormMetrics
	logger   *logger.Logger
}

var validate = validator.New()

// submission mirrors the required contract of the form. Only the title is
// enforced server-side; everything else is the browser's concern and the
// numeric fields already coerce to 0.
type submission struct {
	Title string `validate:"required"`
}

// NewService wires the form pipeline together.
func NewService(loader *Loader, writer catalogWriter, uploads uploader, m *metrics.FormMetrics, logg *logger.Logger) (Service, error) {
	if loader == nil {
		return nil, errors.New("form loader required")
	}
	if writer == nil {
		return nil, errors.New("catalog writer required")
	}
	if uploads == nil {
		return nil, errors.New("upload client required")
	}
	if logg == nil {
		return nil, errors.New("logger required")
	}
	return &service{
		loader:   loader,
		writer:   writer,
		uploads:  uploads,
		renderer: NewRenderer(),
		metrics:  m,
		logger:   logg,
	}, nil
}

// Render loads reference data and, in edit mode, the entity concurrently,
// then renders the pre-populated form. Both loads degrade on failure, so
// this only errors when template execution itself breaks.
func (s *service) Render(ctx context.Context, productID string) (string, error) {
	mode := "create"
	if productID != "" {
		mode = "edit"
	}

	categories, state := s.loader.Load(ctx, productID)
	s.metrics.IncLoad(mode)

	return s.renderer.Form(categories, state, productID, SaveAction, UploadAction)
}

// Upload forwards the file to the image host and, on success, returns the
// new media item with its rendered fragment. On failure nothing is returned
// for insertion, so the live collection stays unchanged.
func (s *service) Upload(ctx context.Context, fileName string, file io.Reader) (*UploadResult, error) {
	hosted, err := s.uploads.Upload(ctx, fileName, file)
	if err != nil {
		s.metrics.IncUpload("failure")
		return nil, err
	}

	fragment, err := s.renderer.Item(MediaItem{URL: hosted.URL, Source: hosted.Source})
	if err != nil {
		s.metrics.IncUpload("failure")
		return nil, err
	}

	s.metrics.IncUpload("success")
	return &UploadResult{URL: hosted.URL, Source: hosted.Source, Item: fragment}, nil
}

// Submit reconciles the submitted control values into a flat payload and
// dispatches create or update depending on whether an id was supplied.
func (s *service) Submit(ctx context.Context, values url.Values, productID string) (*Completion, error) {
	payload := BuildPayload(values, productID)

	if err := validate.Struct(submission{Title: strings.TrimSpace(payload.Title)}); err != nil {
		s.metrics.IncSubmission(modeFor(productID), "invalid")
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "title is required")
	}

	var (
		result *catalog.SaveResult
		err    error
		event  string
	)
	if productID != "" {
		result, err = s.writer.Update(ctx, payload)
		event = EventUpdated
	} else {
		result, err = s.writer.Create(ctx, payload)
		event = EventCreated
	}
	if err != nil {
		s.metrics.IncSubmission(modeFor(productID), "failure")
		return nil, err
	}

	s.metrics.IncSubmission(modeFor(productID), "success")

	ctx = s.logger.WithFields(ctx, map[string]any{"event": event, "product_id": result.ID})
	s.logger.Info(ctx, "form.completion")

	return &Completion{Event: event, ID: result.ID}, nil
}

func modeFor(productID string) string {
	if productID != "" {
		return "edit"
	}
	return "create"
}
