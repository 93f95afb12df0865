package theme

import (
	"fmt"
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	appLogger "github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/core/logger"
)

// ColorPalette define a paleta de cores da aplicação, em tons inspirados
// no Bootstrap.
type ColorPalette struct {
	Primary      color.NRGBA
	PrimaryLight color.NRGBA
	PrimaryDark  color.NRGBA
	PrimaryText  color.NRGBA

	White   color.NRGBA
	Grey50  color.NRGBA
	Grey100 color.NRGBA
	Grey200 color.NRGBA
	Grey300 color.NRGBA
	Grey500 color.NRGBA
	Grey600 color.NRGBA
	Grey800 color.NRGBA
	Grey900 color.NRGBA
	Black   color.NRGBA

	Success   color.NRGBA
	SuccessBg color.NRGBA
	Warning   color.NRGBA
	WarningBg color.NRGBA
	Danger    color.NRGBA
	DangerBg  color.NRGBA
	Info      color.NRGBA
	InfoBg    color.NRGBA

	Background    color.NRGBA
	BackgroundAlt color.NRGBA
	Surface       color.NRGBA
	Scrim         color.NRGBA
	Text          color.NRGBA
	TextMuted     color.NRGBA
	Border        color.NRGBA
}

// hexToNRGBA converte "#RRGGBB" ou "#RGB" para color.NRGBA, com preto
// opaco como fallback.
func hexToNRGBA(hex string) color.NRGBA {
	var r, g, b uint8

	if len(hex) == 0 || hex[0] != '#' {
		appLogger.Warnf("Cor hexadecimal inválida: '%s'. Usando preto.", hex)
		return color.NRGBA{A: 0xFF}
	}
	hex = hex[1:]

	var count int
	var err error
	switch len(hex) {
	case 6:
		count, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 3:
		count, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		if count == 3 && err == nil {
			r *= 17
			g *= 17
			b *= 17
		}
	default:
		appLogger.Warnf("Comprimento de cor hexadecimal inválido: '%s'. Usando preto.", hex)
		return color.NRGBA{A: 0xFF}
	}
	if err != nil || count != 3 {
		appLogger.Warnf("Erro ao parsear cor hexadecimal '%s': %v. Usando preto.", hex, err)
		return color.NRGBA{A: 0xFF}
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}
}

// Colors é a paleta global usada pelos componentes da UI.
var Colors = ColorPalette{
	Primary:      hexToNRGBA("#1A659E"),
	PrimaryLight: hexToNRGBA("#4D8DBC"),
	PrimaryDark:  hexToNRGBA("#0F4C7B"),
	PrimaryText:  hexToNRGBA("#FFFFFF"),

	White:   hexToNRGBA("#FFFFFF"),
	Grey50:  hexToNRGBA("#F8F9FA"),
	Grey100: hexToNRGBA("#F1F3F5"),
	Grey200: hexToNRGBA("#E9ECEF"),
	Grey300: hexToNRGBA("#DEE2E6"),
	Grey500: hexToNRGBA("#ADB5BD"),
	Grey600: hexToNRGBA("#6C757D"),
	Grey800: hexToNRGBA("#343A40"),
	Grey900: hexToNRGBA("#212529"),
	Black:   hexToNRGBA("#000000"),

	Success:   hexToNRGBA("#198754"),
	SuccessBg: hexToNRGBA("#D1E7DD"),
	Warning:   hexToNRGBA("#FFC107"),
	WarningBg: hexToNRGBA("#FFF3CD"),
	Danger:    hexToNRGBA("#DC3545"),
	DangerBg:  hexToNRGBA("#F8D7DA"),
	Info:      hexToNRGBA("#0DCAF0"),
	InfoBg:    hexToNRGBA("#CFF4FC"),

	Background:    hexToNRGBA("#FFFFFF"),
	BackgroundAlt: hexToNRGBA("#F8F9FA"),
	Surface:       hexToNRGBA("#FFFFFF"),
	Scrim:         color.NRGBA{A: 0x99},
	Text:          hexToNRGBA("#212529"),
	TextMuted:     hexToNRGBA("#6C757D"),
	Border:        hexToNRGBA("#DEE2E6"),
}

// Unidades de medida padrão para consistência entre as telas.
var (
	TightVSpacer   = unit.Dp(4)
	DefaultVSpacer = unit.Dp(8)
	LargeVSpacer   = unit.Dp(16)
	PagePadding    = unit.Dp(16)

	InputMinHeight     = unit.Dp(38)
	ListItemHeight     = unit.Dp(48)
	CornerRadius       = unit.Dp(4)
	BorderWidthDefault = unit.Dp(1)

	WindowDefaultWidth  = unit.Dp(1024)
	WindowDefaultHeight = unit.Dp(768)
	WindowMinWidth      = unit.Dp(800)
	WindowMinHeight     = unit.Dp(600)
)

// NewAppTheme cria o material.Theme da aplicação com a paleta customizada
// e as fontes Go embutidas (sem depender de fontes do sistema).
func NewAppTheme() *material.Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.NoSystemFonts(), text.WithCollection(gofont.Collection()))

	th.Palette = material.Palette{
		Fg:         Colors.Text,
		Bg:         Colors.Background,
		ContrastFg: Colors.PrimaryText,
		ContrastBg: Colors.Primary,
	}
	return th
}

// PrimaryButton retorna um botão com o estilo primário da aplicação.
func PrimaryButton(th *material.Theme, clickable *widget.Clickable, txt string) material.ButtonStyle {
	btn := material.Button(th, clickable, txt)
	btn.Background = Colors.Primary
	btn.Color = Colors.PrimaryText
	btn.CornerRadius = CornerRadius
	return btn
}

// DangerButton retorna um botão vermelho para ações destrutivas.
func DangerButton(th *material.Theme, clickable *widget.Clickable, txt string) material.ButtonStyle {
	btn := material.Button(th, clickable, txt)
	btn.Background = Colors.Danger
	btn.Color = Colors.White
	btn.CornerRadius = CornerRadius
	return btn
}

// OutlineButton retorna um botão secundário de fundo claro.
func OutlineButton(th *material.Theme, clickable *widget.Clickable, txt string) material.ButtonStyle {
	btn := material.Button(th, clickable, txt)
	btn.Background = Colors.Grey200
	btn.Color = Colors.Grey800
	btn.CornerRadius = CornerRadius
	return btn
}
