package server

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/limaJavier/councils/internal/input"
	"github.com/limaJavier/councils/internal/pipeline"
	"github.com/limaJavier/councils/pkg/model"
	"github.com/limaJavier/councils/pkg/report"
	"go.uber.org/zap"
)

type arrangeRequest struct {
	Separator string `form:"sep" validate:"separator"`
	Mode      string `form:"mode" validate:"omitempty,oneof=fixed free"`
	Strict    bool   `form:"strict"`
	Grouping  string `form:"grouping" validate:"omitempty,oneof=greedy sat"`
	Letters   string `form:"letters" validate:"omitempty,alpha,max=26"`
	Format    string `form:"format" validate:"omitempty,oneof=json zip"`
}

// POST /api/arrangements (multipart: file plus optional run options)
func (server *Server) arrange(c *fiber.Ctx) error {
	//** Parse and validate the request
	var request arrangeRequest
	if err := c.BodyParser(&request); err != nil {
		return failure(c, fiber.StatusBadRequest, "invalid form: "+err.Error())
	}
	if err := server.validate.Struct(request); err != nil {
		return validationFailure(c, err)
	}

	header, err := c.FormFile("file")
	if err != nil {
		return failure(c, fiber.StatusBadRequest, "missing file")
	}

	//** Resolve the run options on top of the server configuration
	cfg := *server.cfg
	if request.Separator != "" {
		cfg.Separator = request.Separator
	}
	if request.Mode != "" {
		cfg.Mode = request.Mode
	}
	if request.Grouping != "" {
		cfg.Grouping = request.Grouping
	}
	if request.Letters != "" {
		cfg.Letters = request.Letters
	}
	cfg.Strict = cfg.Strict || request.Strict

	options, err := pipeline.OptionsFromConfig(&cfg)
	if err != nil {
		return failure(c, fiber.StatusBadRequest, err.Error())
	}
	separator, err := input.ParseSeparator(cfg.Separator)
	if err != nil {
		return failure(c, fiber.StatusBadRequest, err.Error())
	}
	marker, err := input.NewMarker(cfg.Marker)
	if err != nil {
		return failure(c, fiber.StatusInternalServerError, err.Error())
	}

	//** Read the upload
	file, err := header.Open()
	if err != nil {
		return failure(c, fiber.StatusBadRequest, "cannot open file")
	}
	defer file.Close()

	var source input.Source
	if strings.EqualFold(filepath.Ext(header.Filename), ".json") {
		source, err = input.ReadJSON(file, marker)
	} else {
		source, err = input.ReadCSV(file, separator, marker)
	}
	if err != nil {
		return failure(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	//** Arrange
	logger := server.logger.With(zap.Any("requestID", c.Locals("requestID")))
	result, err := pipeline.New(options, logger).Run(c.UserContext(), source)
	if err != nil {
		return domainFailure(c, err)
	}

	if request.Format == "zip" {
		var buffer bytes.Buffer
		if err := report.WriteZip(&buffer, result.Grid); err != nil {
			return failure(c, fiber.StatusInternalServerError, err.Error())
		}
		c.Attachment("councils.zip")
		return c.Send(buffer.Bytes())
	}

	message := "valid"
	if result.Grid.HasConflicts {
		message = "conflicts found"
	}
	return success(c, fiber.StatusOK, message, result.Grid)
}

// Input and arrangement errors are the client's; anything else is ours
func domainFailure(c *fiber.Ctx, err error) error {
	var (
		labelErr      model.InvalidClassLabelError
		emptyErr      model.EmptyRosterError
		unsatisfiable model.UnsatisfiableError
	)
	if errors.As(err, &labelErr) || errors.As(err, &emptyErr) || errors.As(err, &unsatisfiable) {
		return failure(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	return failure(c, fiber.StatusInternalServerError, err.Error())
}
