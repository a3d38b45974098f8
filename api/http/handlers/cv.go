package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/jobmatch/api/http/presenter"
	"github.com/artem13815/jobmatch/pkg/analysis"
	"github.com/artem13815/jobmatch/pkg/config"
	"github.com/artem13815/jobmatch/pkg/resume"
	"github.com/artem13815/jobmatch/pkg/storage/files"
)

// CVFormField is the multipart field carrying the uploaded PDF.
const CVFormField = "cv"

type CVHandler struct {
	uc    analysis.UseCase
	store files.Store
	text  resume.TextSource
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewCVHandler(uc analysis.UseCase, store files.Store, text resume.TextSource, maxBytes int64) *CVHandler {
	if maxBytes <= 0 {
		maxBytes = config.DefaultMaxUploadBytes
	}
	if text == nil {
		text = resume.SimulatedText{}
	}
	return &CVHandler{uc: uc, store: store, text: text, maxBytes: maxBytes}
}

type analyzeErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Analyze accepts a PDF CV and returns the job offers matching the detected skills.
// @Summary Analyze a CV
// @Description Accepts a single PDF in the "cv" field, detects skills and scores active offers.
// @Tags    cv
// @Accept  multipart/form-data
// @Produce json
// @Param   cv formData file true "CV (PDF)"
// @Success 200 {object} analysis.Result
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 413 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /analyze-cv [post]
func (h *CVHandler) Analyze(c *fiber.Ctx) error {
	fh, err := c.FormFile(CVFormField)
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "no file uploaded: expected a PDF in the \"cv\" field")
	}
	if fh.Size > h.maxBytes {
		return presenter.Error(c, http.StatusRequestEntityTooLarge, fmt.Sprintf("%v: limit is %d bytes", resume.ErrTooLarge, h.maxBytes))
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		if errors.Is(err, resume.ErrTooLarge) {
			return presenter.Error(c, http.StatusRequestEntityTooLarge, err.Error())
		}
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	contentType := fh.Header.Get("Content-Type")
	if err := resume.Validate(fh.Filename, contentType, data, h.maxBytes); err != nil {
		switch {
		case errors.Is(err, resume.ErrTooLarge):
			return presenter.Error(c, http.StatusRequestEntityTooLarge, err.Error())
		default:
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
	}

	upload := resume.Upload{
		ID:          uuid.New(),
		Filename:    fh.Filename,
		ContentType: "application/pdf",
		Size:        int64(len(data)),
		UploadedAt:  time.Now().UTC(),
	}
	if pages, err := resume.PageCount(data); err == nil {
		upload.Pages = pages
	} else {
		log.Printf("[cv] %s: page count unavailable: %v", fh.Filename, err)
	}
	if h.store != nil {
		uri, err := h.store.Save(c.Context(), upload.StoredName(), upload.ContentType, data)
		if err != nil {
			log.Printf("[cv] store %s: %v", fh.Filename, err)
			return presenter.JSON(c, http.StatusInternalServerError, analyzeErrorResponse{Message: "failed to store uploaded file"})
		}
		upload.StorageURI = uri
	}
	log.Printf("[cv] received %s (%d bytes, %d pages)", upload.Filename, upload.Size, upload.Pages)

	text, err := h.text.Text(c.Context(), upload, data)
	if err != nil {
		return presenter.JSON(c, http.StatusInternalServerError, analyzeErrorResponse{Message: "failed to read CV"})
	}
	res, err := h.uc.AnalyzeResume(c.Context(), upload, text)
	if err != nil {
		log.Printf("[cv] analyze %s: %v", fh.Filename, err)
		return presenter.JSON(c, http.StatusInternalServerError, analyzeErrorResponse{Message: "CV analysis failed"})
	}
	return presenter.JSON(c, http.StatusOK, res)
}

func readAtMost(r io.Reader, max int64) ([]byte, error) {
	limited := io.LimitReader(r, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("%w: limit is %d bytes", resume.ErrTooLarge, max)
	}
	return b, nil
}
