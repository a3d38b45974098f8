package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/jobmatch/api/http/presenter"
	"github.com/artem13815/jobmatch/pkg/job"
)

type JobsHandler struct {
	uc job.UseCase
}

func NewJobsHandler(uc job.UseCase) *JobsHandler { return &JobsHandler{uc: uc} }

// List returns every active job offer.
// @Summary List active job offers
// @Tags    jobs
// @Produce json
// @Success 200 {array} job.Offer
// @Router  /jobs [get]
func (h *JobsHandler) List(c *fiber.Ctx) error {
	offers, err := h.uc.ListActive(c.Context())
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list job offers")
	}
	return presenter.JSON(c, http.StatusOK, offers)
}

// Get returns one active job offer.
// @Summary Get a job offer
// @Tags    jobs
// @Produce json
// @Param   id path int true "job offer id"
// @Success 200 {object} job.Offer
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [get]
func (h *JobsHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return presenter.Error(c, http.StatusBadRequest, "invalid job id")
	}
	o, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "job offer not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load job offer")
	}
	return presenter.JSON(c, http.StatusOK, o)
}
