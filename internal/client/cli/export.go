package cli

import (
	"context"
	"fmt"
)

// Export writes the last fetched bill history to a spreadsheet in the
// current directory.
func (a *App) Export(ctx context.Context) error {
	if a.selected == nil || len(a.bills) == 0 {
		notify("Nenhum histórico carregado. Use 'bills' antes de exportar")
		return nil
	}

	path, err := a.exporter.Export(a.bills, *a.selected, ".")
	if err != nil {
		a.log.Error(ctx, "spreadsheet export failed", "error", err)
		notify("Não foi possível gerar a planilha. Tente novamente")
		return err
	}

	notify(fmt.Sprintf("Histórico exportado para %s", path))
	return nil
}
