package http

import (
	"github.com/gin-gonic/gin"

	"cooked-flow/internal/model"
	"cooked-flow/internal/plan"
	"cooked-flow/pkg/response"

	pkgErrors "cooked-flow/pkg/errors"
)

// Generate godoc
// @Summary     Generate a nutrition plan from a workout CSV
// @Description Uploads a TrainingPeaks CSV export and the athlete weight; returns daily nutrition targets and saves the plan when a store is configured.
// @Tags        Plans
// @Accept      multipart/form-data
// @Produce     json
// @Param       file      formData file   true "Workout CSV export"
// @Param       weight_kg formData number true "Athlete weight in kg (0 < w <= 250)"
// @Success     200 {object} generateResp
// @Failure     400 {object} response.Resp "Bad Request - invalid weight, missing columns, empty file"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plan/nutrition [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	file, err := req.file.Open()
	if err != nil {
		h.l.Errorf(ctx, "open upload: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(400, "could not read uploaded file"), nil)
		return
	}
	defer file.Close()

	output, err := h.uc.Generate(ctx, h.scope(c), plan.GenerateInput{
		Reader:   file,
		Filename: req.file.Filename,
		WeightKg: req.weightKg,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newGenerateResp(output))
}

// List godoc
// @Summary     List saved nutrition plans
// @Description Returns a paginated list of saved plans, newest first, without their rows.
// @Tags        Plans
// @Produce     json
// @Param       limit  query int false "Page size (default: 20, max: 100)"
// @Param       offset query int false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, h.scope(c), plan.ListInput{
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get one saved plan
// @Description Returns a single saved plan with its per-day rows.
// @Tags        Plans
// @Produce     json
// @Param       id path string true "Plan ID"
// @Success     200 {object} planResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, pkgErrors.NewHTTPError(400, "id is required"), nil)
		return
	}

	output, err := h.uc.Detail(ctx, h.scope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newPlanResp(output))
}

// scope builds the request scope from middleware-populated context values.
func (h *handler) scope(c *gin.Context) model.Scope {
	return model.Scope{
		RequestID: c.GetString("request_id"),
	}
}
