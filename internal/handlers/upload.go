package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"stylecraft-backend/internal/media"
	"stylecraft-backend/internal/middleware"
	"stylecraft-backend/internal/models"
	"stylecraft-backend/internal/supabase"
)

// multipart framing on top of the file itself
const formOverhead = 1 << 20

var uploadFieldNames = []string{"image", "file", "photo"}

type UploadHandler struct {
	store    UploadStore
	storage  ObjectStorage
	maxBytes int64
}

func NewUploadHandler(store UploadStore, storage ObjectStorage, maxBytes int64) *UploadHandler {
	return &UploadHandler{
		store:    store,
		storage:  storage,
		maxBytes: maxBytes,
	}
}

// Upload godoc
// @Summary     Upload a clothing photo
// @Description Validates the image (content sniffed, size limited), stores it and records a pending upload.
// @Tags        uploads
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       image formData file true "Clothing photo (field name image, file or photo)"
// @Success     201 {object} models.UploadResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	tooLarge := models.ErrorResponse{
		Error:   "file too large",
		Message: "Please upload an image smaller than " + media.FormatBytes(h.maxBytes),
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+formOverhead)
	if err := c.Request.ParseMultipartForm(h.maxBytes + formOverhead); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusBadRequest, tooLarge)
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to parse multipart form",
			Message: err.Error(),
		})
		return
	}

	header := formFile(c.Request.MultipartForm)
	if header == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "no file uploaded",
			Message: "please provide the image in the \"image\" form field",
		})
		return
	}
	if header.Size > h.maxBytes {
		c.JSON(http.StatusBadRequest, tooLarge)
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read file", Message: err.Error()})
		return
	}
	defer file.Close()

	data, err := media.ReadAll(file, h.maxBytes)
	if err != nil {
		var limitErr *media.TooLargeError
		if errors.As(err, &limitErr) {
			c.JSON(http.StatusBadRequest, tooLarge)
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read file", Message: err.Error()})
		return
	}

	mimeType, ext, err := media.DetectImage(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid file type",
			Message: "Please upload an image file",
		})
		return
	}

	uploadID := uuid.New()
	storagePath := supabase.UploadPath(userID, uploadID, ext)
	log := middleware.Logger(c).WithFields(logrus.Fields{
		"upload_id": uploadID,
		"mime_type": mimeType,
		"size":      len(data),
	})

	publicURL, err := h.storage.Upload(storagePath, mimeType, data)
	if err != nil {
		log.WithError(err).Error("failed to store upload")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to upload file",
			Message: err.Error(),
		})
		return
	}

	upload, err := h.store.CreateUpload(c.Request.Context(), &models.UploadedImage{
		ID:             uploadID,
		UserID:         userID,
		ImageURL:       publicURL,
		StoragePath:    storagePath,
		AnalysisStatus: models.UploadStatusPending,
	})
	if err != nil {
		log.WithError(err).Error("failed to record upload")
		if delErr := h.storage.Delete(storagePath); delErr != nil {
			log.WithError(delErr).Warn("failed to remove orphaned upload")
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to save upload",
			Message: err.Error(),
		})
		return
	}

	log.Info("image uploaded")

	resp := toUploadResponse(*upload)
	resp.MimeType = mimeType
	resp.Size = int64(len(data))
	if resp.CreatedAt.IsZero() {
		resp.CreatedAt = time.Now().UTC()
	}
	c.JSON(http.StatusCreated, resp)
}

// ListUploads godoc
// @Summary     List uploads
// @Description Returns the caller's uploads, newest first
// @Tags        uploads
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.UploadListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /uploads [get]
func (h *UploadHandler) ListUploads(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	uploads, err := h.store.ListUploads(c.Request.Context(), userID)
	if err != nil {
		writeStoreError(c, err, "uploads")
		return
	}

	c.JSON(http.StatusOK, models.UploadListResponse{Uploads: toUploadList(uploads)})
}

// GetUpload godoc
// @Summary     Get an upload
// @Tags        uploads
// @Produce     json
// @Security    Bearer
// @Param       upload_id path string true "Upload ID (UUID)"
// @Success     200 {object} models.UploadResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /uploads/{upload_id} [get]
func (h *UploadHandler) GetUpload(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	uploadID, ok := parseIDParam(c, "upload_id", "upload")
	if !ok {
		return
	}

	upload, err := h.store.GetUpload(c.Request.Context(), uploadID, userID)
	if err != nil {
		writeStoreError(c, err, "upload")
		return
	}

	c.JSON(http.StatusOK, toUploadResponse(*upload))
}

func formFile(form *multipart.Form) *multipart.FileHeader {
	if form == nil {
		return nil
	}
	for _, name := range uploadFieldNames {
		if files := form.File[name]; len(files) > 0 {
			return files[0]
		}
	}
	return nil
}
