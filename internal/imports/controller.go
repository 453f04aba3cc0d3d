package imports

import (
	"net/http"

	"github.com/KoIa247/SeatingApp/internal/shared/config"
	"github.com/KoIa247/SeatingApp/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
	config  *config.Config
}

func NewController(service Service, cfg *config.Config) *Controller {
	return &Controller{
		service: service,
		config:  cfg,
	}
}

// ImportResponse is the batch import summary returned to the admin UI.
type ImportResponse struct {
	Added   int    `json:"added"`
	Skipped int    `json:"skipped"`
	Failed  int    `json:"failed"`
	Summary string `json:"summary"`
}

// ImportSpreadsheet handles a multipart spreadsheet upload and runs the
// batch reconciliation against the booking store.
func (c *Controller) ImportSpreadsheet(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Spreadsheet file is required", nil, err.Error())
		return
	}

	if c.config.Upload.MaxSize > 0 && fileHeader.Size > c.config.Upload.MaxSize {
		response.RespondJSON(ctx, "error", http.StatusRequestEntityTooLarge, "Uploaded file is too large", nil, nil)
		return
	}

	// Rows that name no date in their product text fall back to the
	// currently selected show date.
	fallbackDate := ctx.PostForm("fallback_date")
	if fallbackDate == "" {
		fallbackDate = c.config.Event.DefaultDate
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to open uploaded file", nil, err.Error())
		return
	}
	defer file.Close()

	result, err := c.service.ImportFile(ctx.Request.Context(), fileHeader.Filename, file, fallbackDate)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusUnprocessableEntity, "Import failed", nil, err.Error())
		return
	}

	resp := ImportResponse{
		Added:   result.Added,
		Skipped: result.Skipped,
		Failed:  result.Failed,
		Summary: result.Summary(),
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Import complete", resp, nil)
}
