// Package export writes a site's bill history to a spreadsheet.
package export

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/alans123s/billtrackery/internal/client/models"
)

const sheetName = "Histórico de Contas"

// Column layout of the exported sheet. Order and labels are the export
// contract; widths follow the original product.
var columns = []struct {
	header string
	width  float64
}{
	{"Mês de Referência", 15},
	{"Data de Vencimento", 20},
	{"Valor (R$)", 15},
	{"Consumo (kWh)", 15},
	{"Status", 20},
	{"Identificador da Conta", 40},
	{"Contrato", 20},
}

// ExcelExporter builds xlsx workbooks from bill histories.
type ExcelExporter struct{}

func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Filename is derived deterministically from the site's installation number.
func (e *ExcelExporter) Filename(site models.Site) string {
	return fmt.Sprintf("historico_contas_%s.xlsx", site.SiteNumber)
}

// Export writes the workbook into dir and returns the full path.
func (e *ExcelExporter) Export(bills []models.Bill, site models.Site, dir string) (string, error) {
	f, err := e.workbook(bills)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	path := filepath.Join(dir, e.Filename(site))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("saving spreadsheet: %w", err)
	}
	return path, nil
}

func (e *ExcelExporter) workbook(bills []models.Bill) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for i, col := range columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, name+"1", col.header); err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, name, name, col.width); err != nil {
			return nil, err
		}
	}

	for i, bill := range bills {
		row := i + 2
		values := []any{
			bill.ReferenceMonth,
			bill.DueDateFormatted(),
			bill.ValueFormatted(),
			bill.Consumption,
			bill.StatusLabel(),
			bill.BillIdentifier,
			bill.Site.Contract,
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
