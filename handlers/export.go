package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// GET /admin/exportar
func (h *Handler) ExportarPagamentos(c *gin.Context) {
	todos, err := h.Ledger.List(c.Request.Context())
	if err != nil {
		erro(c, http.StatusInternalServerError, "Falha ao consultar o livro de pagamentos")
		return
	}

	f := excelize.NewFile()
	sheetName := "Pagamentos"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"No", "Referência", "Email", "Plano", "Valor", "Moeda", "Método", "Status", "Data", "Confirmado Em"}
	for i, titulo := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, titulo)
	}

	styleHeader, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4F46E5"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	f.SetCellStyle(sheetName, "A1", "J1", styleHeader)

	styleConfirmado, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "#10B981"}})
	stylePendente, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "#F59E0B"}})

	row := 2
	for i, p := range todos {
		confirmadoEm := ""
		if p.ConfirmedAt != nil {
			confirmadoEm = p.ConfirmedAt.Format("02-01-2006 15:04")
		}

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), p.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), p.Email)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), p.Plano)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), p.Valor.InexactFloat64())
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), p.Moeda)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), p.Metodo)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), string(p.Status))
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), p.CreatedAt.Format("02-01-2006 15:04"))
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), confirmadoEm)

		statusCell := fmt.Sprintf("H%d", row)
		if p.ConfirmedAt != nil {
			f.SetCellStyle(sheetName, statusCell, statusCell, styleConfirmado)
		} else {
			f.SetCellStyle(sheetName, statusCell, statusCell, stylePendente)
		}

		row++
	}

	f.SetColWidth(sheetName, "A", "A", 5)
	f.SetColWidth(sheetName, "B", "B", 18)
	f.SetColWidth(sheetName, "C", "C", 28)
	f.SetColWidth(sheetName, "D", "H", 14)
	f.SetColWidth(sheetName, "I", "J", 18)

	fileName := fmt.Sprintf("Pagamentos_EmpregoJa_%s.xlsx", time.Now().Format("20060102"))

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fileName))
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		erro(c, http.StatusInternalServerError, "Falha ao gerar o ficheiro Excel")
	}
}
