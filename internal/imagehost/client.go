package imagehost

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/webshoplabs/product-form-api/pkg/config"
	pkgerrors "github.com/webshoplabs/product-form-api/pkg/errors"
	"github.com/webshoplabs/product-form-api/pkg/logger"
)

var (
	errEndpointRequired   = errors.New("image host endpoint is required")
	errCredentialRequired = errors.New("image host client id is required")
	errLoggerRequired     = errors.New("image host logger is required")
)

// Hosted is the result of a successful upload: the hosted link paired with
// the file's original name. The two always travel together so the media
// list keeps matched url/source pairs.
type Hosted struct {
	URL    string `json:"url"`
	Source string `json:"source"`
}

// Client forwards user-selected files to the external hosting API.
type Client struct {
	httpClient *http.Client
	endpoint   string
	clientID   string
	logger     *logger.Logger
}

// NewClient validates the upload configuration and builds the wrapper.
func NewClient(cfg config.UploadConfig, logg *logger.Logger) (*Client, error) {
	if logg == nil {
		return nil, errLoggerRequired
	}
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, errEndpointRequired
	}
	clientID := strings.TrimSpace(cfg.ClientID)
	if clientID == "" {
		return nil, errCredentialRequired
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		endpoint:   endpoint,
		clientID:   clientID,
		logger:     logg,
	}, nil
}

// Upload packages the file as multipart form data and posts it to the
// hosting API with the client credential header. On success the hosted link
// is paired with the original file name.
func (c *Client) Upload(ctx context.Context, fileName string, file io.Reader) (*Hosted, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", fileName)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build multipart payload")
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "copy upload body")
	}
	if err := writer.Close(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "finalize multipart payload")
	}

	c.log(ctx, "request", map[string]any{"file_name": fileName, "size": body.Len()})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build upload request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Client-ID "+c.clientID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log(ctx, "error", map[string]any{"file_name": fileName, "error": err.Error()})
		return nil, pkgerrors.Wrap(pkgerrors.CodeUploadFailed, err, "upload image")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("image host returned %s", resp.Status)
		c.log(ctx, "error", map[string]any{"file_name": fileName, "error": err.Error()})
		return nil, pkgerrors.Wrap(pkgerrors.CodeUploadFailed, err, "upload image")
	}

	var payload struct {
		Data struct {
			Link string `json:"link"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log(ctx, "error", map[string]any{"file_name": fileName, "error": err.Error()})
		return nil, pkgerrors.Wrap(pkgerrors.CodeUploadFailed, err, "decode upload response")
	}
	if payload.Data.Link == "" {
		err := errors.New("image host response missing link")
		c.log(ctx, "error", map[string]any{"file_name": fileName, "error": err.Error()})
		return nil, pkgerrors.Wrap(pkgerrors.CodeUploadFailed, err, "upload image")
	}

	c.log(ctx, "response", map[string]any{"file_name": fileName, "url": payload.Data.Link})
	return &Hosted{URL: payload.Data.Link, Source: fileName}, nil
}

func (c *Client) log(ctx context.Context, phase string, fields map[string]any) {
	if c == nil || c.logger == nil {
		return
	}
	logFields := map[string]any{
		"operation": "upload_image",
		"phase":     phase,
	}
	for k, v := range fields {
		logFields[k] = v
	}
	ctx = c.logger.WithFields(ctx, logFields)
	switch phase {
	case "error":
		c.logger.Error(ctx, "image host upload_image", errors.New(fmt.Sprint(fields["error"])))
	default:
		c.logger.Debug(ctx, fmt.Sprintf("image host %s", phase))
	}
}
