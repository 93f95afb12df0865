package components

import (
	"fmt"
	"image"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/ui/theme"
)

// DeleteConfirmModal é o diálogo de confirmação de exclusão, com variação
// de mensagem para exclusão única e em lote. Um OnConfirm rejeitado
// mantém o diálogo aberto; o chamador é responsável por notificar o erro.
type DeleteConfirmModal struct {
	th         *material.Theme
	executor   func(func())
	invalidate func()

	// OnConfirm roda fora da thread de UI quando o usuário confirma.
	OnConfirm func() error

	visible  bool
	deleting bool
	names    []string
	multiple bool

	confirmBtn widget.Clickable
	cancelBtn  widget.Clickable
	scrim      widget.Clickable
	namesList  widget.List

	spinner LoadingSpinner
}

// NewDeleteConfirmModal cria o diálogo desconectado de qualquer janela.
func NewDeleteConfirmModal(th *material.Theme, executor func(func()), invalidate func()) *DeleteConfirmModal {
	m := &DeleteConfirmModal{
		th:         th,
		executor:   executor,
		invalidate: invalidate,
	}
	m.namesList.Axis = layout.Vertical
	return m
}

// Open exibe o diálogo para os alvos informados.
func (m *DeleteConfirmModal) Open(names []string, multiple bool) {
	m.names = names
	m.multiple = multiple
	m.deleting = false
	m.visible = true
}

// Close fecha o diálogo sem confirmar.
func (m *DeleteConfirmModal) Close() {
	m.visible = false
}

// IsOpen informa se o diálogo está visível.
func (m *DeleteConfirmModal) IsOpen() bool {
	return m.visible
}

// Confirm dispara o callback de exclusão em uma goroutine. Sucesso fecha
// o diálogo; erro o mantém aberto para nova tentativa.
func (m *DeleteConfirmModal) Confirm() {
	if m.deleting || m.OnConfirm == nil {
		return
	}
	m.deleting = true
	go func() {
		err := m.OnConfirm()
		m.executor(func() {
			m.finishConfirm(err)
		})
	}()
}

func (m *DeleteConfirmModal) finishConfirm(err error) {
	m.deleting = false
	if err == nil {
		m.visible = false
	}
}

func (m *DeleteConfirmModal) processEvents(gtx layout.Context) {
	if m.confirmBtn.Clicked(gtx) {
		m.Confirm()
	}
	if m.cancelBtn.Clicked(gtx) && !m.deleting {
		m.Close()
	}
	m.scrim.Clicked(gtx)
}

// Layout desenha o scrim e o cartão de confirmação.
func (m *DeleteConfirmModal) Layout(gtx layout.Context) layout.Dimensions {
	if !m.visible {
		return layout.Dimensions{}
	}
	m.processEvents(gtx)

	paint.FillShape(gtx.Ops, theme.Colors.Scrim, clip.Rect{Max: gtx.Constraints.Max}.Op())
	scrimDims := m.scrim.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Dimensions{Size: gtx.Constraints.Max}
	})

	layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Max.X = gtx.Dp(unit.Dp(440))
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		return m.layoutCard(gtx)
	})
	return scrimDims
}

func (m *DeleteConfirmModal) layoutCard(gtx layout.Context) layout.Dimensions {
	return layout.Background{}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			rect := clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, gtx.Dp(theme.CornerRadius))
			paint.FillShape(gtx.Ops, theme.Colors.Surface, rect.Op(gtx.Ops))
			return layout.Dimensions{Size: gtx.Constraints.Min}
		},
		func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(theme.PagePadding).Layout(gtx, m.layoutContent)
		},
	)
}

func (m *DeleteConfirmModal) layoutContent(gtx layout.Context) layout.Dimensions {
	title := "Excluir Cliente"
	question := "Tem certeza que deseja excluir o cliente abaixo? Esta ação não pode ser desfeita."
	if m.multiple {
		title = "Excluir Clientes"
		question = fmt.Sprintf("Tem certeza que deseja excluir os %d clientes abaixo? Esta ação não pode ser desfeita.", len(m.names))
	}

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			h := material.H6(m.th, title)
			h.Font.Weight = font.Bold
			h.Color = theme.Colors.Danger
			return h.Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Height: theme.DefaultVSpacer}.Layout),
		layout.Rigid(material.Body1(m.th, question).Layout),
		layout.Rigid(layout.Spacer{Height: theme.DefaultVSpacer}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if maxH := gtx.Dp(unit.Dp(160)); gtx.Constraints.Max.Y > maxH {
				gtx.Constraints.Max.Y = maxH
			}
			return material.List(m.th, &m.namesList).Layout(gtx, len(m.names),
				func(gtx layout.Context, i int) layout.Dimensions {
					item := material.Body2(m.th, "• "+m.names[i])
					item.Color = theme.Colors.Grey800
					return layout.Inset{Bottom: theme.TightVSpacer}.Layout(gtx, item.Layout)
				})
		}),
		layout.Rigid(layout.Spacer{Height: theme.LargeVSpacer}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceStart}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					if !m.deleting {
						return layout.Dimensions{}
					}
					return layout.Inset{Right: theme.DefaultVSpacer}.Layout(gtx, m.spinner.Layout)
				}),
				layout.Rigid(theme.OutlineButton(m.th, &m.cancelBtn, "Cancelar").Layout),
				layout.Rigid(layout.Spacer{Width: theme.DefaultVSpacer}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					label := "Excluir"
					if m.deleting {
						label = "Excluindo..."
					}
					return theme.DangerButton(m.th, &m.confirmBtn, label).Layout(gtx)
				}),
			)
		}),
	)
}
