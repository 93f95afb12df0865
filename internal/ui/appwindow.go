package ui

import (
	"image"
	"time"

	"gioui.org/app"
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/core"
	appLogger "github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/core/logger"
	"github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/ui/icons"
	"github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/ui/theme"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Page é a interface que as telas hospedadas na janela implementam.
type Page interface {
	Layout(gtx C) D
	// OnNavigatedTo é chamado quando a página passa a ser exibida.
	OnNavigatedTo(params interface{})
}

// toastState guarda a mensagem global exibida no topo da janela.
type toastState struct {
	visible    bool
	title      string
	message    string
	isError    bool
	generation int
}

// AppWindow é a janela principal da aplicação. Toda mutação de estado da
// UI acontece na goroutine do loop de eventos: goroutines de trabalho
// entregam resultados via Execute.
type AppWindow struct {
	window *app.Window
	th     *material.Theme
	cfg    *core.Config

	page Page

	// updates acumula closures a executar na thread de UI antes do
	// próximo frame.
	updates chan func()

	toast      toastState
	toastClose widget.Clickable
}

// NewAppWindow cria a janela nativa com o tema da aplicação.
func NewAppWindow(cfg *core.Config) *AppWindow {
	w := app.NewWindow(
		app.Title(cfg.AppName),
		app.Size(theme.WindowDefaultWidth, theme.WindowDefaultHeight),
		app.MinSize(theme.WindowMinWidth, theme.WindowMinHeight),
	)
	return &AppWindow{
		window:  w,
		th:      theme.NewAppTheme(),
		cfg:     cfg,
		updates: make(chan func(), 64),
	}
}

// Theme expõe o tema para páginas e componentes.
func (aw *AppWindow) Theme() *material.Theme {
	return aw.th
}

// Config expõe a configuração carregada.
func (aw *AppWindow) Config() *core.Config {
	return aw.cfg
}

// SetPage define a página hospedada e dispara OnNavigatedTo.
func (aw *AppWindow) SetPage(p Page) {
	aw.page = p
	if p != nil {
		p.OnNavigatedTo(nil)
	}
	aw.window.Invalidate()
}

// Execute agenda fn para rodar na thread de UI antes do próximo frame.
// Seguro para chamada de qualquer goroutine.
func (aw *AppWindow) Execute(fn func()) {
	aw.updates <- fn
	aw.window.Invalidate()
}

// Invalidate solicita um novo frame. Seguro para chamada de qualquer
// goroutine.
func (aw *AppWindow) Invalidate() {
	aw.window.Invalidate()
}

// ShowGlobalMessage exibe o toast global. autoHide zero mantém a mensagem
// até o usuário fechar. Seguro para chamada de qualquer goroutine.
func (aw *AppWindow) ShowGlobalMessage(title, message string, isError bool, autoHide time.Duration) {
	aw.Execute(func() {
		aw.toast.generation++
		gen := aw.toast.generation
		aw.toast.visible = true
		aw.toast.title = title
		aw.toast.message = message
		aw.toast.isError = isError

		if autoHide > 0 {
			time.AfterFunc(autoHide, func() {
				aw.Execute(func() {
					// Não derruba um toast mais novo.
					if aw.toast.generation == gen {
						aw.toast.visible = false
					}
				})
			})
		}
	})
}

// Run executa o loop de eventos da janela até ela ser destruída.
func (aw *AppWindow) Run() error {
	var ops op.Ops
	for {
		switch e := aw.window.NextEvent().(type) {
		case app.DestroyEvent:
			appLogger.Info("Janela principal encerrada.")
			return e.Err
		case app.FrameEvent:
			aw.drainUpdates()
			gtx := app.NewContext(&ops, e)
			aw.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (aw *AppWindow) drainUpdates() {
	for {
		select {
		case fn := <-aw.updates:
			fn()
		default:
			return
		}
	}
}

func (aw *AppWindow) layout(gtx C) D {
	paint.Fill(gtx.Ops, theme.Colors.Background)

	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx C) D {
			if aw.page == nil {
				return D{Size: gtx.Constraints.Max}
			}
			return aw.page.Layout(gtx)
		}),
		layout.Stacked(func(gtx C) D {
			if !aw.toast.visible {
				return D{}
			}
			return layout.Inset{Top: unit.Dp(12), Left: unit.Dp(12), Right: unit.Dp(12)}.Layout(gtx, aw.layoutToast)
		}),
	)
}

func (aw *AppWindow) layoutToast(gtx C) D {
	if aw.toastClose.Clicked(gtx) {
		aw.toast.visible = false
	}

	bg := theme.Colors.SuccessBg
	fg := theme.Colors.Success
	if aw.toast.isError {
		bg = theme.Colors.DangerBg
		fg = theme.Colors.Danger
	}

	return layout.Background{}.Layout(gtx,
		func(gtx C) D {
			rect := clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, gtx.Dp(theme.CornerRadius))
			paint.FillShape(gtx.Ops, bg, rect.Op(gtx.Ops))
			return D{Size: gtx.Constraints.Min}
		},
		func(gtx C) D {
			return layout.UniformInset(unit.Dp(10)).Layout(gtx, func(gtx C) D {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					layout.Flexed(1, func(gtx C) D {
						return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
							layout.Rigid(func(gtx C) D {
								title := material.Body1(aw.th, aw.toast.title)
								title.Color = fg
								title.Font.Weight = font.Bold
								return title.Layout(gtx)
							}),
							layout.Rigid(func(gtx C) D {
								if aw.toast.message == "" {
									return D{}
								}
								msg := material.Body2(aw.th, aw.toast.message)
								msg.Color = theme.Colors.Grey800
								return msg.Layout(gtx)
							}),
						)
					}),
					layout.Rigid(func(gtx C) D {
						closeIcon := icons.MustGet(icons.IconClose)
						if closeIcon == nil {
							return D{}
						}
						btn := material.IconButton(aw.th, &aw.toastClose, closeIcon, "Fechar")
						btn.Background = bg
						btn.Color = fg
						btn.Size = unit.Dp(18)
						btn.Inset = layout.UniformInset(unit.Dp(4))
						return btn.Layout(gtx)
					}),
				)
			})
		},
	)
}
