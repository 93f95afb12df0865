package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/core"
	appLogger "github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/core/logger"
	"github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/data/models"
)

var clienteExportHeader = []interface{}{
	"ID", "Empresa", "ID Empresa", "CNPJ", "Periodicidade (dias)",
	"Status", "Nacional", "Municipal", "Estadual",
}

// ExportClientesXLSX grava a lista de clientes em uma planilha XLSX no
// diretório de exportação configurado e retorna o caminho do arquivo gerado.
// O nome do arquivo leva um timestamp para não sobrescrever exportações
// anteriores.
func ExportClientesXLSX(exportDir string, clientes []models.Cliente) (string, error) {
	if err := os.MkdirAll(exportDir, 0o755); err != nil {
		return "", core.WrapErrorf(err, "falha ao criar diretório de exportação '%s'", exportDir)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			appLogger.Warnf("Erro ao fechar arquivo XLSX em memória: %v", err)
		}
	}()

	const sheet = "Clientes"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return "", core.WrapErrorf(err, "falha ao criar planilha '%s'", sheet)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		appLogger.Debugf("Planilha padrão não removida: %v", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &clienteExportHeader); err != nil {
		return "", core.WrapErrorf(err, "falha ao escrever cabeçalho da planilha")
	}

	for i, c := range clientes {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			c.ID,
			c.Empresa.NomeEmpresa,
			c.Empresa.IDEmpresa,
			c.CNPJ,
			c.Periodicidade,
			c.StatusCliente,
			boolPtBR(c.Nacional),
			boolPtBR(c.Municipal),
			boolPtBR(c.Estadual),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return "", core.WrapErrorf(err, "falha ao escrever linha %d da planilha", i+2)
		}
	}

	fileName := fmt.Sprintf("clientes_cnd_%s.xlsx", time.Now().Format("20060102_150405"))
	fullPath := filepath.Join(exportDir, fileName)
	if err := f.SaveAs(fullPath); err != nil {
		return "", fmt.Errorf("%w: falha ao salvar '%s': %v", core.ErrExport, fullPath, err)
	}

	appLogger.Infof("Exportação XLSX concluída: %s (%d clientes)", fullPath, len(clientes))
	return fullPath, nil
}

func boolPtBR(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}
