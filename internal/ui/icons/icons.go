package icons

import (
	"fmt"

	"gioui.org/widget"
	"golang.org/x/exp/shiny/materialdesign/icons"

	appLogger "github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/core/logger"
)

// IconType enumera os ícones Material usados pela aplicação.
type IconType int

const (
	IconNone IconType = iota
	IconSearch
	IconAdd
	IconEdit
	IconDelete
	IconRefresh
	IconExport
	IconClose
	IconWarning
	IconError
	IconInfo
)

// Os widget.Icon são imutáveis depois de criados, então o cache é
// preenchido apenas pela thread de UI.
var iconCache = make(map[IconType]*widget.Icon)

// Get retorna o widget.Icon correspondente, com cache por tipo.
func Get(iconType IconType) (*widget.Icon, error) {
	if icon, ok := iconCache[iconType]; ok {
		return icon, nil
	}

	var data []byte
	switch iconType {
	case IconSearch:
		data = icons.ActionSearch
	case IconAdd:
		data = icons.ContentAdd
	case IconEdit:
		data = icons.ImageEdit
	case IconDelete:
		data = icons.ActionDelete
	case IconRefresh:
		data = icons.NavigationRefresh
	case IconExport:
		data = icons.FileFileUpload
	case IconClose:
		data = icons.NavigationClose
	case IconWarning:
		data = icons.AlertWarning
	case IconError:
		data = icons.AlertError
	case IconInfo:
		data = icons.ActionInfo
	default:
		appLogger.Warnf("Ícone não mapeado para IconType %d. Usando fallback.", iconType)
		data = icons.ActionHelp
	}

	icon, err := widget.NewIcon(data)
	if err != nil {
		return nil, fmt.Errorf("falha ao criar widget.Icon para IconType %d: %w", iconType, err)
	}
	iconCache[iconType] = icon
	return icon, nil
}

// MustGet retorna o ícone ou nil em caso de falha, para uso direto em
// código de layout onde um ícone ausente não é fatal.
func MustGet(iconType IconType) *widget.Icon {
	icon, err := Get(iconType)
	if err != nil {
		appLogger.Errorf("Erro ao carregar ícone %d: %v", iconType, err)
		return nil
	}
	return icon
}
