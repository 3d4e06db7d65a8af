package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/pkg/utils"
	"github.com/forest-management-gis/internal/usecase"
)

// FileHandler отдаёт сгенерированные отчёты и выгрузки как вложения.
// Файлы также остаются в директории загрузок.
type FileHandler struct {
	reportUC *usecase.ReportUseCase
	exportUC *usecase.ExportUseCase
	logger   *zap.Logger
}

func NewFileHandler(reportUC *usecase.ReportUseCase, exportUC *usecase.ExportUseCase, logger *zap.Logger) *FileHandler {
	return &FileHandler{
		reportUC: reportUC,
		exportUC: exportUC,
		logger:   logger,
	}
}

// GenerateReport godoc
// @Summary PDF-отчёт
// @Tags Reports
// @Produce application/pdf
// @Param report_type path string true "summary, trees, areas или full"
// @Param area_id query string false "Фильтр деревьев по участку"
// @Success 200 {file} binary
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/reports/generate/{report_type} [get]
func (h *FileHandler) GenerateReport(c *fiber.Ctx) error {
	file, err := h.reportUC.Generate(c.Context(), c.Params("report_type"), c.Query("area_id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendFile(c, file.Filename, file.ContentType, file.Content)
}

// Export godoc
// @Summary Выгрузка данных
// @Description json - деревья, участки и треки; csv - только деревья, без фото
// @Tags Export
// @Produce application/json,text/csv
// @Param format path string true "json или csv"
// @Success 200 {file} binary
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/export/{format} [get]
func (h *FileHandler) Export(c *fiber.Ctx) error {
	file, err := h.exportUC.Export(c.Context(), c.Params("format"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendFile(c, file.Filename, file.ContentType, file.Content)
}
