package components

import (
	"image"
	"strconv"
	"strings"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/core"
	"github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/data/models"
	"github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/ui/theme"
	"github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/utils"
)

// ClienteFormModal é o diálogo de criação/edição de cliente. O rascunho
// vive nos editores; a validação acontece no Submit e coleta todos os
// erros de campo de uma vez. Um submit rejeitado mantém o diálogo aberto
// com o rascunho intacto.
type ClienteFormModal struct {
	th *material.Theme

	// executor agenda closures na thread de UI; invalidate pede um novo
	// frame. Ambos são injetados pela janela para manter o componente
	// testável.
	executor   func(func())
	invalidate func()

	// OnSubmit roda fora da thread de UI com o rascunho validado.
	// Retornar nil fecha o diálogo; um erro o mantém aberto.
	OnSubmit func(draft models.ClienteCreate) error

	visible    bool
	submitting bool
	editing    *models.Cliente

	cnpjEditor          widget.Editor
	periodicidadeEditor widget.Editor
	idEmpresaEditor     widget.Editor
	nomeEmpresaEditor   widget.Editor
	empresaCNPJEditor   widget.Editor
	statusAtivo         widget.Bool
	nacionalCheck       widget.Bool
	municipalCheck      widget.Bool
	estadualCheck       widget.Bool

	fieldErrors map[string]string

	saveBtn   widget.Clickable
	cancelBtn widget.Clickable
	scrim     widget.Clickable
	formList  widget.List

	spinner LoadingSpinner
}

// NewClienteFormModal cria o diálogo desconectado de qualquer janela.
func NewClienteFormModal(th *material.Theme, executor func(func()), invalidate func()) *ClienteFormModal {
	m := &ClienteFormModal{
		th:          th,
		executor:    executor,
		invalidate:  invalidate,
		fieldErrors: make(map[string]string),
	}
	m.formList.Axis = layout.Vertical
	for _, ed := range m.editors() {
		ed.SingleLine = true
	}
	return m
}

func (m *ClienteFormModal) editors() []*widget.Editor {
	return []*widget.Editor{
		&m.cnpjEditor, &m.periodicidadeEditor, &m.idEmpresaEditor,
		&m.nomeEmpresaEditor, &m.empresaCNPJEditor,
	}
}

// Open reseta o rascunho e exibe o diálogo. Com cliente nil entra em modo
// de criação com os valores padrão; caso contrário, em modo de edição com
// uma cópia do registro.
func (m *ClienteFormModal) Open(cliente *models.Cliente) {
	m.editing = cliente
	m.fieldErrors = make(map[string]string)
	m.submitting = false
	m.visible = true

	draft := models.NewClienteCreate()
	if cliente != nil {
		draft = models.FromCliente(cliente)
	}
	m.cnpjEditor.SetText(utils.FormatCNPJ(draft.CNPJ))
	m.periodicidadeEditor.SetText(strconv.Itoa(draft.Periodicidade))
	m.idEmpresaEditor.SetText(draft.Empresa.IDEmpresa)
	m.nomeEmpresaEditor.SetText(draft.Empresa.NomeEmpresa)
	m.empresaCNPJEditor.SetText(utils.FormatCNPJ(draft.Empresa.CNPJ))
	m.statusAtivo.Value = draft.StatusCliente == "ativo"
	m.nacionalCheck.Value = draft.Nacional
	m.municipalCheck.Value = draft.Municipal
	m.estadualCheck.Value = draft.Estadual
}

// Close fecha o diálogo descartando o rascunho.
func (m *ClienteFormModal) Close() {
	m.visible = false
}

// IsOpen informa se o diálogo está visível.
func (m *ClienteFormModal) IsOpen() bool {
	return m.visible
}

// Editing retorna o registro em edição, ou nil em modo de criação.
func (m *ClienteFormModal) Editing() *models.Cliente {
	return m.editing
}

// FieldError retorna a mensagem de erro atual do campo, se houver.
func (m *ClienteFormModal) FieldError(field string) string {
	return m.fieldErrors[field]
}

// buildDraft monta o ClienteCreate a partir dos editores. Erros de
// conversão entram no mapa extra para serem mesclados aos da validação.
func (m *ClienteFormModal) buildDraft() (models.ClienteCreate, map[string]string) {
	extra := make(map[string]string)

	draft := models.ClienteCreate{
		CNPJ:          strings.TrimSpace(m.cnpjEditor.Text()),
		StatusCliente: "inativo",
		Nacional:      m.nacionalCheck.Value,
		Municipal:     m.municipalCheck.Value,
		Estadual:      m.estadualCheck.Value,
		Empresa: models.Empresa{
			IDEmpresa:   strings.TrimSpace(m.idEmpresaEditor.Text()),
			NomeEmpresa: strings.TrimSpace(m.nomeEmpresaEditor.Text()),
			CNPJ:        strings.TrimSpace(m.empresaCNPJEditor.Text()),
		},
	}
	if m.statusAtivo.Value {
		draft.StatusCliente = "ativo"
	}

	periodStr := strings.TrimSpace(m.periodicidadeEditor.Text())
	if periodStr != "" {
		p, err := strconv.Atoi(periodStr)
		if err != nil {
			extra["periodicidade"] = "Periodicidade deve ser um número positivo."
		} else {
			draft.Periodicidade = p
		}
	}
	return draft, extra
}

// validateDraft aplica as regras declarativas do modelo e, em seguida, a
// conferência de dígitos verificadores dos dois CNPJs.
func (m *ClienteFormModal) validateDraft(draft models.ClienteCreate, extra map[string]string) *core.ValidationError {
	fields := models.FlattenValidationErrors(draft.Validate())
	for k, v := range extra {
		fields[k] = v
	}
	if fields["cnpj"] == "" && !utils.IsValidCNPJ(models.CleanCNPJ(draft.CNPJ)) {
		fields["cnpj"] = "CNPJ do Cliente inválido. Dígitos verificadores não conferem."
	}
	if fields["empresa.cnpj"] == "" && !utils.IsValidCNPJ(models.CleanCNPJ(draft.Empresa.CNPJ)) {
		fields["empresa.cnpj"] = "CNPJ da Empresa inválido. Dígitos verificadores não conferem."
	}

	for k, v := range fields {
		if v == "" {
			delete(fields, k)
		}
	}
	if len(fields) > 0 {
		return core.NewValidationError("Corrija os campos destacados.", fields)
	}
	return nil
}

// Submit valida o rascunho. Se houver erros de campo, nada é enviado e o
// callback não é invocado. Com o rascunho válido, OnSubmit roda em uma
// goroutine e o desfecho volta para a thread de UI via executor.
func (m *ClienteFormModal) Submit() {
	if m.submitting {
		return
	}
	draft, extra := m.buildDraft()
	if verr := m.validateDraft(draft, extra); verr != nil {
		m.fieldErrors = verr.Fields
		m.invalidate()
		return
	}
	m.fieldErrors = make(map[string]string)
	if m.OnSubmit == nil {
		return
	}
	m.submitting = true

	go func() {
		err := m.OnSubmit(draft)
		m.executor(func() {
			m.finishSubmit(err)
		})
	}()
}

func (m *ClienteFormModal) finishSubmit(err error) {
	m.submitting = false
	if err == nil {
		m.visible = false
	}
}

func (m *ClienteFormModal) processEvents(gtx layout.Context) {
	m.handleCNPJEditor(gtx, &m.cnpjEditor, "cnpj")
	m.handleCNPJEditor(gtx, &m.empresaCNPJEditor, "empresa.cnpj")
	m.handleEditor(gtx, &m.periodicidadeEditor, "periodicidade")
	m.handleEditor(gtx, &m.idEmpresaEditor, "empresa.idEmpresa")
	m.handleEditor(gtx, &m.nomeEmpresaEditor, "empresa.nomeEmpresa")

	if m.statusAtivo.Update(gtx) {
		delete(m.fieldErrors, "statusCliente")
	}
	m.nacionalCheck.Update(gtx)
	m.municipalCheck.Update(gtx)
	m.estadualCheck.Update(gtx)

	if m.saveBtn.Clicked(gtx) {
		m.Submit()
	}
	if m.cancelBtn.Clicked(gtx) && !m.submitting {
		m.Close()
	}
	// Cliques no scrim são absorvidos sem fechar o diálogo.
	m.scrim.Clicked(gtx)
}

// handleEditor limpa o erro do campo assim que o usuário o edita.
func (m *ClienteFormModal) handleEditor(gtx layout.Context, ed *widget.Editor, field string) bool {
	changed := false
	for {
		ev, ok := ed.Update(gtx)
		if !ok {
			break
		}
		if _, isChange := ev.(widget.ChangeEvent); isChange {
			changed = true
		}
	}
	if changed {
		delete(m.fieldErrors, field)
	}
	return changed
}

// handleCNPJEditor aplica a máscara de CNPJ a cada edição, reposicionando
// o cursor no fim do texto mascarado.
func (m *ClienteFormModal) handleCNPJEditor(gtx layout.Context, ed *widget.Editor, field string) {
	if !m.handleEditor(gtx, ed, field) {
		return
	}
	masked := utils.FormatCNPJ(ed.Text())
	if masked != ed.Text() {
		ed.SetText(masked)
		ed.SetCaret(len(masked), len(masked))
	}
}

// Layout desenha o scrim e o cartão central do formulário.
func (m *ClienteFormModal) Layout(gtx layout.Context) layout.Dimensions {
	if !m.visible {
		return layout.Dimensions{}
	}
	m.processEvents(gtx)

	paint.FillShape(gtx.Ops, theme.Colors.Scrim, clip.Rect{Max: gtx.Constraints.Max}.Op())
	scrimDims := m.scrim.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Dimensions{Size: gtx.Constraints.Max}
	})

	layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Max.X = gtx.Dp(unit.Dp(520))
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		if maxH := gtx.Constraints.Max.Y - gtx.Dp(unit.Dp(48)); maxH > 0 {
			gtx.Constraints.Max.Y = maxH
		}
		return m.layoutCard(gtx)
	})
	return scrimDims
}

func (m *ClienteFormModal) layoutCard(gtx layout.Context) layout.Dimensions {
	return layout.Background{}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			rect := clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, gtx.Dp(theme.CornerRadius))
			paint.FillShape(gtx.Ops, theme.Colors.Surface, rect.Op(gtx.Ops))
			return layout.Dimensions{Size: gtx.Constraints.Min}
		},
		func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(theme.PagePadding).Layout(gtx, m.layoutForm)
		},
	)
}

func (m *ClienteFormModal) layoutForm(gtx layout.Context) layout.Dimensions {
	title := "Novo Cliente"
	if m.editing != nil {
		title = "Editar Cliente"
	}

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			h := material.H6(m.th, title)
			h.Font.Weight = font.Bold
			return h.Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Height: theme.DefaultVSpacer}.Layout),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return material.List(m.th, &m.formList).Layout(gtx, 1, func(gtx layout.Context, _ int) layout.Dimensions {
				return m.layoutFields(gtx)
			})
		}),
		layout.Rigid(layout.Spacer{Height: theme.LargeVSpacer}.Layout),
		layout.Rigid(m.layoutActions),
	)
}

func (m *ClienteFormModal) layoutFields(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(m.labeledEditor("CNPJ do Cliente", &m.cnpjEditor, "cnpj", "XX.XXX.XXX/XXXX-XX")),
		layout.Rigid(m.labeledEditor("Periodicidade (dias)", &m.periodicidadeEditor, "periodicidade", "30")),
		layout.Rigid(layout.Spacer{Height: theme.TightVSpacer}.Layout),
		layout.Rigid(material.CheckBox(m.th, &m.statusAtivo, "Cliente ativo").Layout),
		layout.Rigid(layout.Spacer{Height: theme.DefaultVSpacer}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			lbl := material.Body2(m.th, "Certidões monitoradas")
			lbl.Color = theme.Colors.TextMuted
			return lbl.Layout(gtx)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
				layout.Rigid(material.CheckBox(m.th, &m.nacionalCheck, "Nacional").Layout),
				layout.Rigid(layout.Spacer{Width: theme.LargeVSpacer}.Layout),
				layout.Rigid(material.CheckBox(m.th, &m.municipalCheck, "Municipal").Layout),
				layout.Rigid(layout.Spacer{Width: theme.LargeVSpacer}.Layout),
				layout.Rigid(material.CheckBox(m.th, &m.estadualCheck, "Estadual").Layout),
			)
		}),
		layout.Rigid(layout.Spacer{Height: theme.LargeVSpacer}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			lbl := material.Body1(m.th, "Dados da Empresa")
			lbl.Font.Weight = font.SemiBold
			return lbl.Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Height: theme.TightVSpacer}.Layout),
		layout.Rigid(m.labeledEditor("ID da Empresa", &m.idEmpresaEditor, "empresa.idEmpresa", "até 6 caracteres")),
		layout.Rigid(m.labeledEditor("Nome da Empresa", &m.nomeEmpresaEditor, "empresa.nomeEmpresa", "")),
		layout.Rigid(m.labeledEditor("CNPJ da Empresa", &m.empresaCNPJEditor, "empresa.cnpj", "XX.XXX.XXX/XXXX-XX")),
	)
}

// labeledEditor desenha label, campo com borda e a mensagem de erro do
// campo, quando presente.
func (m *ClienteFormModal) labeledEditor(label string, ed *widget.Editor, field, hint string) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		errMsg := m.fieldErrors[field]
		borderColor := theme.Colors.Border
		if errMsg != "" {
			borderColor = theme.Colors.Danger
		}

		return layout.Inset{Bottom: theme.DefaultVSpacer}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(material.Body2(m.th, label).Layout),
				layout.Rigid(layout.Spacer{Height: unit.Dp(2)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					border := widget.Border{
						Color:        borderColor,
						CornerRadius: theme.CornerRadius,
						Width:        theme.BorderWidthDefault,
					}
					return border.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						return layout.UniformInset(unit.Dp(8)).Layout(gtx,
							material.Editor(m.th, ed, hint).Layout)
					})
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					if errMsg == "" {
						return layout.Dimensions{}
					}
					msg := material.Body2(m.th, errMsg)
					msg.Color = theme.Colors.Danger
					return layout.Inset{Top: unit.Dp(2)}.Layout(gtx, msg.Layout)
				}),
			)
		})
	}
}

func (m *ClienteFormModal) layoutActions(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceStart}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if !m.submitting {
				return layout.Dimensions{}
			}
			return layout.Inset{Right: theme.DefaultVSpacer}.Layout(gtx, m.spinner.Layout)
		}),
		layout.Rigid(theme.OutlineButton(m.th, &m.cancelBtn, "Cancelar").Layout),
		layout.Rigid(layout.Spacer{Width: theme.DefaultVSpacer}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			label := "Salvar"
			if m.submitting {
				label = "Salvando..."
			}
			return theme.PrimaryButton(m.th, &m.saveBtn, label).Layout(gtx)
		}),
	)
}
