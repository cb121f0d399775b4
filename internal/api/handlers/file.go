package handlers

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/rohits-web03/filedock/internal/api/services"
	"github.com/rohits-web03/filedock/internal/models"
	"github.com/rohits-web03/filedock/internal/utils"
	"github.com/rs/zerolog"
)

const serverErrorMessage = "Server error"

// Uploader is the part of services.UploadService the handler needs.
type Uploader interface {
	Upload(ctx context.Context, in services.UploadInput) (*models.FileDocument, error)
}

type FileHandler struct {
	uploader  Uploader
	maxMemory int64
}

func NewFileHandler(uploader Uploader, maxMemory int64) *FileHandler {
	if maxMemory <= 0 {
		maxMemory = 32 << 20
	}
	return &FileHandler{uploader: uploader, maxMemory: maxMemory}
}

// POST /api/upload
// UploadFile godoc
// @Summary Upload a file
// @Description Stores the file in the configured bucket and records its metadata document.
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Param ownerId formData string true "Owner id"
// @Param accountId formData string true "Account id"
// @Success 201 {object} models.FileDocument
// @Failure 400 {object} utils.ErrorPayload "Missing data"
// @Failure 500 {object} utils.ErrorPayload
// @Router /api/upload [post]
func (h *FileHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	log := zerolog.Ctx(r.Context())

	if err := r.ParseMultipartForm(h.maxMemory); err != nil {
		// urlencoded bodies are parsed into PostForm before this error and carry no file parts
		if !errors.Is(err, http.ErrNotMultipart) || !isURLEncoded(r) {
			h.serverError(w, r, err)
			return
		}
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	file, err := readFormFile(r)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	doc, err := h.uploader.Upload(r.Context(), services.UploadInput{
		File:      file,
		OwnerID:   r.PostFormValue("ownerId"),
		AccountID: r.PostFormValue("accountId"),
	})

	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		log.Debug().Strs("fields", vErr.Fields).Msg("upload rejected")
		utils.ErrorResponse(w, http.StatusBadRequest, vErr.Error())
	case err != nil:
		h.serverError(w, r, err)
	default:
		log.Info().
			Str("document_id", doc.ID.String()).
			Str("bucket_file_id", doc.BucketFileID).
			Int64("size", doc.Size).
			Msg("file uploaded")
		utils.JSONResponse(w, http.StatusCreated, doc)
	}
}

// readFormFile returns the "file" part, or nil when the form has none. A
// non-empty plain value sent under "file" is used as a nameless file.
func readFormFile(r *http.Request) (*services.FileInput, error) {
	if r.MultipartForm != nil {
		if headers := r.MultipartForm.File["file"]; len(headers) > 0 {
			fh := headers[0]
			src, err := fh.Open()
			if err != nil {
				return nil, err
			}
			defer src.Close()

			data, err := io.ReadAll(src)
			if err != nil {
				return nil, err
			}
			return &services.FileInput{Name: fh.Filename, Data: data}, nil
		}
	}
	if value := r.PostFormValue("file"); value != "" {
		return &services.FileInput{Data: []byte(value)}, nil
	}
	return nil, nil
}

func isURLEncoded(r *http.Request) bool {
	ct, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && ct == "application/x-www-form-urlencoded"
}

func (h *FileHandler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	origin := "request"
	var upErr *services.UpstreamError
	if errors.As(err, &upErr) {
		origin = upErr.Kind.String()
	}
	zerolog.Ctx(r.Context()).Error().Err(err).Str("origin", origin).Msg("upload failed")

	msg := err.Error()
	if msg == "" {
		msg = serverErrorMessage
	}
	utils.ErrorResponse(w, http.StatusInternalServerError, msg)
}
