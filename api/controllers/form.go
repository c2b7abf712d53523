package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/webshoplabs/product-form-api/api/responses"
	"github.com/webshoplabs/product-form-api/internal/form"
	pkgerrors "github.com/webshoplabs/product-form-api/pkg/errors"
	"github.com/webshoplabs/product-form-api/pkg/logger"
)

// RenderForm serves the product form page. Without a productId URL
// parameter the form is in create mode; with one, the entity is loaded and
// the controls arrive pre-populated.
func RenderForm(svc form.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "form service unavailable"))
			return
		}

		productID := chi.URLParam(r, "productId")

		ctx := r.Context()
		if productID != "" {
			ctx = logg.WithProductID(ctx, productID)
		}

		page, err := svc.Render(ctx, productID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteHTML(w, page)
	}
}

// SubmitForm reconciles the posted control values into a payload and
// dispatches create or update. The submitted form is the live control tree
// at the moment the user hit save: repeated url/source inputs arrive in
// their current DOM order, so a drag just before submit is honored.
func SubmitForm(svc form.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "form service unavailable"))
			return
		}

		if err := r.ParseForm(); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid form body"))
			return
		}

		productID := r.PostForm.Get("id")

		ctx := r.Context()
		if productID != "" {
			ctx = logg.WithProductID(ctx, productID)
		}

		completion, err := svc.Submit(ctx, r.PostForm, productID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, completion)
	}
}

// UploadMedia forwards a user-selected file to the image host and answers
// with the hosted item plus the rendered fragment the page appends to the
// sortable list. On failure the page gets an error envelope and inserts
// nothing.
func UploadMedia(svc form.Service, maxBytes int64, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "form service unavailable"))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid upload body"))
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "image file is required"))
			return
		}
		defer func() {
			_ = file.Close()
		}()

		result, err := svc.Upload(r.Context(), header.Filename, file)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
