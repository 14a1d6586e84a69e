package http

import (
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"

	pkgErrors "cooked-flow/pkg/errors"
)

// generateReq is the parsed multipart upload: the CSV file plus the athlete
// weight form value.
type generateReq struct {
	file     *multipart.FileHeader
	weightKg float64
}

// processGenerateReq extracts and validates the multipart form. Range
// checking of the weight stays in the use case; this only rejects requests
// that are structurally unusable.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq

	file, err := c.FormFile("file")
	if err != nil {
		return req, pkgErrors.NewHTTPError(400, "file is required")
	}
	req.file = file

	raw := c.PostForm("weight_kg")
	if raw == "" {
		return req, pkgErrors.NewHTTPError(400, "weight_kg is required")
	}
	w, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return req, pkgErrors.NewHTTPError(400, "weight_kg must be a number")
	}
	req.weightKg = w

	return req, nil
}

// listReq is the pagination query of the plans index.
type listReq struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, "invalid pagination parameters")
	}
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 20
	}
	if req.Offset < 0 {
		req.Offset = 0
	}
	return req, nil
}
