package pages

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
	"time"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/core"
	appLogger "github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/core/logger"
	"github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/data/models"
	"github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/services"
	"github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/ui/components"
	"github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/ui/icons"
	"github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/ui/theme"
	"github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/utils"
)

const toastDuration = 5 * time.Second

// windowHost é o recorte da janela que a página precisa. Mantido estreito
// para permitir testes sem uma janela real.
type windowHost interface {
	Execute(fn func())
	Invalidate()
	ShowGlobalMessage(title, message string, isError bool, autoHide time.Duration)
	Theme() *material.Theme
}

// MonitorPage é a tela de monitoramento de CNDs: tabela de clientes com
// filtros, seleção múltipla e os diálogos de cadastro e exclusão. A lista
// autoritativa vive aqui; toda mutação bem-sucedida dispara uma recarga
// completa.
type MonitorPage struct {
	host windowHost
	svc  services.ClienteService
	cfg  *core.Config

	clientes []models.Cliente
	filtered []models.Cliente
	// selected guarda os ids marcados. Não é podado quando o filtro muda;
	// só é zerado em recargas e após exclusões.
	selected map[int64]struct{}

	loading    bool
	loadedOnce bool
	exporting  bool

	searchEmpresa widget.Editor
	searchCNPJ    widget.Editor

	selectAllCheck widget.Bool
	rowChecks      []widget.Bool
	rowEditBtns    []widget.Clickable
	rowDeleteBtns  []widget.Clickable

	addBtn        widget.Clickable
	refreshBtn    widget.Clickable
	exportBtn     widget.Clickable
	bulkDeleteBtn widget.Clickable

	tableList widget.List
	spinner   components.LoadingSpinner

	formModal   *components.ClienteFormModal
	deleteModal *components.DeleteConfirmModal
}

// NewMonitorPage monta a página e liga os callbacks dos diálogos ao
// serviço de clientes.
func NewMonitorPage(host windowHost, svc services.ClienteService, cfg *core.Config) *MonitorPage {
	p := &MonitorPage{
		host:     host,
		svc:      svc,
		cfg:      cfg,
		selected: make(map[int64]struct{}),
	}
	p.tableList.Axis = layout.Vertical
	p.searchEmpresa.SingleLine = true
	p.searchCNPJ.SingleLine = true

	p.formModal = components.NewClienteFormModal(host.Theme(), host.Execute, host.Invalidate)
	p.formModal.OnSubmit = p.submitForm
	p.deleteModal = components.NewDeleteConfirmModal(host.Theme(), host.Execute, host.Invalidate)
	p.deleteModal.OnConfirm = p.confirmDelete

	return p
}

// OnNavigatedTo carrega a lista na primeira exibição da página.
func (p *MonitorPage) OnNavigatedTo(_ interface{}) {
	if !p.loadedOnce {
		p.loadedOnce = true
		p.loadClientes()
	}
}

// loadClientes busca a lista completa em uma goroutine e entrega o
// resultado à thread de UI. Deve ser chamado da thread de UI.
func (p *MonitorPage) loadClientes() {
	p.loading = true
	go func() {
		list, err := p.svc.GetAllClientes()
		p.host.Execute(func() {
			p.handleLoadResult(list, err)
		})
	}()
}

// handleLoadResult aplica o resultado da carga: qualquer carga zera a
// seleção; falha esvazia a lista e notifica.
func (p *MonitorPage) handleLoadResult(list []models.Cliente, err error) {
	p.loading = false
	p.selected = make(map[int64]struct{})
	if err != nil {
		appLogger.Errorf("Falha ao carregar clientes: %v", err)
		p.clientes = nil
		p.host.ShowGlobalMessage("Erro ao carregar clientes", friendlyError(err), true, toastDuration)
	} else {
		p.clientes = list
	}
	p.applyFilter()
}

// applyFilter recalcula a visão filtrada e sincroniza os widgets de linha.
func (p *MonitorPage) applyFilter() {
	p.filtered = filterClientes(p.clientes, p.searchEmpresa.Text(), p.searchCNPJ.Text())
	p.syncRowWidgets()
}

// filterClientes aplica os dois predicados de busca: nome da empresa
// (substring, sem diferenciar maiúsculas, sempre aplicado) e CNPJ
// (substring, apenas quando o termo não está vazio).
func filterClientes(clientes []models.Cliente, empresaQuery, cnpjQuery string) []models.Cliente {
	eq := strings.ToLower(strings.TrimSpace(empresaQuery))
	cq := strings.TrimSpace(cnpjQuery)

	out := make([]models.Cliente, 0, len(clientes))
	for _, c := range clientes {
		if !strings.Contains(strings.ToLower(c.Empresa.NomeEmpresa), eq) {
			continue
		}
		if cq != "" && !strings.Contains(c.CNPJ, cq) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// syncRowWidgets redimensiona os widgets por linha e espelha o estado da
// seleção nos checkboxes.
func (p *MonitorPage) syncRowWidgets() {
	n := len(p.filtered)
	if cap(p.rowChecks) < n {
		p.rowChecks = make([]widget.Bool, n)
		p.rowEditBtns = make([]widget.Clickable, n)
		p.rowDeleteBtns = make([]widget.Clickable, n)
	}
	p.rowChecks = p.rowChecks[:n]
	p.rowEditBtns = p.rowEditBtns[:n]
	p.rowDeleteBtns = p.rowDeleteBtns[:n]

	for i, c := range p.filtered {
		_, sel := p.selected[c.ID]
		p.rowChecks[i].Value = sel
	}
	p.selectAllCheck.Value = p.allFilteredSelected()
}

// allFilteredSelected reflete a regra do checkbox de cabeçalho: marcado
// quando há linhas visíveis e a seleção tem o mesmo tamanho da visão
// filtrada. Não há estado intermediário.
func (p *MonitorPage) allFilteredSelected() bool {
	return len(p.filtered) > 0 && len(p.selected) == len(p.filtered)
}

// toggleSelectAll substitui a seleção pelo conjunto exato de ids
// visíveis, ou a esvazia.
func (p *MonitorPage) toggleSelectAll(on bool) {
	if on {
		p.selected = make(map[int64]struct{}, len(p.filtered))
		for _, c := range p.filtered {
			p.selected[c.ID] = struct{}{}
		}
	} else {
		p.selected = make(map[int64]struct{})
	}
	p.syncRowWidgets()
}

func (p *MonitorPage) toggleRow(id int64, on bool) {
	if on {
		p.selected[id] = struct{}{}
	} else {
		delete(p.selected, id)
	}
	p.selectAllCheck.Value = p.allFilteredSelected()
}

// selectedNames devolve os rótulos dos clientes selecionados, na ordem da
// lista autoritativa.
func (p *MonitorPage) selectedNames() []string {
	names := make([]string, 0, len(p.selected))
	for i := range p.clientes {
		if _, ok := p.selected[p.clientes[i].ID]; ok {
			names = append(names, p.clientes[i].NomeExibicao())
		}
	}
	return names
}

func (p *MonitorPage) selectedIDs() []int64 {
	ids := make([]int64, 0, len(p.selected))
	for i := range p.clientes {
		if _, ok := p.selected[p.clientes[i].ID]; ok {
			ids = append(ids, p.clientes[i].ID)
		}
	}
	return ids
}

// submitForm é o OnSubmit do formulário: roda fora da thread de UI,
// decide entre criação e atualização e, em caso de sucesso, agenda a
// recarga completa.
func (p *MonitorPage) submitForm(draft models.ClienteCreate) error {
	var err error
	if p.formModal.Editing() == nil {
		_, err = p.svc.CreateCliente(draft)
	} else {
		_, err = p.svc.UpdateCliente(draft)
	}
	if err != nil {
		p.host.ShowGlobalMessage("Erro ao salvar cliente", friendlyError(err), true, toastDuration)
		return err
	}

	msg := "Cliente criado com sucesso."
	if p.formModal.Editing() != nil {
		msg = "Cliente atualizado com sucesso."
	}
	p.host.ShowGlobalMessage("Sucesso", msg, false, toastDuration)
	p.host.Execute(p.loadClientes)
	return nil
}

// confirmDelete é o OnConfirm do diálogo de exclusão: roda fora da thread
// de UI sobre a seleção corrente.
func (p *MonitorPage) confirmDelete() error {
	ids := p.selectedIDs()
	if len(ids) == 0 {
		return nil
	}
	results, err := p.svc.DeleteClientes(ids)
	if err != nil {
		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
			}
		}
		p.host.ShowGlobalMessage("Erro ao excluir",
			fmt.Sprintf("%d de %d exclusões falharam. A lista será recarregada.", failed, len(ids)),
			true, toastDuration)
		// Recarrega mesmo assim: parte das exclusões pode ter ocorrido.
		p.host.Execute(p.loadClientes)
		return err
	}

	msg := "Cliente excluído com sucesso."
	if len(ids) > 1 {
		msg = fmt.Sprintf("%d clientes excluídos com sucesso.", len(ids))
	}
	p.host.ShowGlobalMessage("Sucesso", msg, false, toastDuration)
	p.host.Execute(p.loadClientes)
	return nil
}

// openDeleteFor abre o diálogo de exclusão para o único cliente indicado,
// sobrescrevendo a seleção corrente.
func (p *MonitorPage) openDeleteFor(c models.Cliente) {
	p.selected = map[int64]struct{}{c.ID: {}}
	p.syncRowWidgets()
	p.deleteModal.Open([]string{c.NomeExibicao()}, false)
}

func (p *MonitorPage) openBulkDelete() {
	if len(p.selected) == 0 {
		return
	}
	p.deleteModal.Open(p.selectedNames(), len(p.selected) > 1)
}

// exportFiltered exporta a visão filtrada corrente para XLSX.
func (p *MonitorPage) exportFiltered() {
	if p.exporting {
		return
	}
	p.exporting = true
	snapshot := make([]models.Cliente, len(p.filtered))
	copy(snapshot, p.filtered)

	go func() {
		path, err := utils.ExportClientesXLSX(p.cfg.ExportDir, snapshot)
		p.host.Execute(func() {
			p.exporting = false
			if err != nil {
				p.host.ShowGlobalMessage("Erro na exportação", friendlyError(err), true, toastDuration)
				return
			}
			p.host.ShowGlobalMessage("Exportação concluída", fmt.Sprintf("Arquivo gerado: %s", path), false, toastDuration)
		})
	}()
}

// friendlyError escolhe a mensagem exibida ao usuário para cada classe de
// erro.
func friendlyError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, core.ErrNetwork):
		return "Não foi possível conectar à API. Verifique sua conexão e tente novamente."
	case errors.Is(err, core.ErrNotFound):
		return "Registro não encontrado. A lista pode estar desatualizada."
	default:
		return err.Error()
	}
}

func (p *MonitorPage) processEvents(gtx layout.Context) {
	if changed := editorChanged(gtx, &p.searchEmpresa); changed {
		p.applyFilter()
	}
	if changed := editorChanged(gtx, &p.searchCNPJ); changed {
		p.applyFilter()
	}

	if p.selectAllCheck.Update(gtx) {
		p.toggleSelectAll(p.selectAllCheck.Value)
	}
	for i := range p.rowChecks {
		if p.rowChecks[i].Update(gtx) {
			p.toggleRow(p.filtered[i].ID, p.rowChecks[i].Value)
		}
	}
	for i := range p.rowEditBtns {
		if p.rowEditBtns[i].Clicked(gtx) {
			c := p.filtered[i]
			p.formModal.Open(&c)
		}
	}
	for i := range p.rowDeleteBtns {
		if p.rowDeleteBtns[i].Clicked(gtx) {
			p.openDeleteFor(p.filtered[i])
		}
	}

	if p.addBtn.Clicked(gtx) {
		p.formModal.Open(nil)
	}
	if p.refreshBtn.Clicked(gtx) && !p.loading {
		p.loadClientes()
	}
	if p.exportBtn.Clicked(gtx) {
		p.exportFiltered()
	}
	if p.bulkDeleteBtn.Clicked(gtx) {
		p.openBulkDelete()
	}
}

func editorChanged(gtx layout.Context, ed *widget.Editor) bool {
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
	return changed
}

// Layout desenha a página e os diálogos sobrepostos.
func (p *MonitorPage) Layout(gtx layout.Context) layout.Dimensions {
	p.processEvents(gtx)
	th := p.host.Theme()

	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(theme.PagePadding).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Rigid(p.layoutHeader(th)),
					layout.Rigid(layout.Spacer{Height: theme.DefaultVSpacer}.Layout),
					layout.Rigid(p.layoutSearch(th)),
					layout.Rigid(layout.Spacer{Height: theme.DefaultVSpacer}.Layout),
					layout.Rigid(p.layoutStats(th)),
					layout.Rigid(layout.Spacer{Height: theme.DefaultVSpacer}.Layout),
					layout.Rigid(p.layoutTableHeader(th)),
					layout.Flexed(1, p.layoutTable(th)),
				)
			})
		}),
		layout.Expanded(p.formModal.Layout),
		layout.Expanded(p.deleteModal.Layout),
	)
}

func (p *MonitorPage) layoutHeader(th *material.Theme) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				title := material.H5(th, "Monitoramento de CNDs")
				title.Font.Weight = font.Bold
				title.Color = theme.Colors.PrimaryDark
				return title.Layout(gtx)
			}),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{Size: gtx.Constraints.Min}
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if len(p.selected) == 0 {
					return layout.Dimensions{}
				}
				label := fmt.Sprintf("Excluir Selecionados (%d)", len(p.selected))
				return layout.Inset{Right: theme.DefaultVSpacer}.Layout(gtx,
					theme.DangerButton(th, &p.bulkDeleteBtn, label).Layout)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Inset{Right: theme.DefaultVSpacer}.Layout(gtx,
					p.iconButton(th, &p.exportBtn, icons.IconExport, "Exportar XLSX"))
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Inset{Right: theme.DefaultVSpacer}.Layout(gtx,
					p.iconButton(th, &p.refreshBtn, icons.IconRefresh, "Atualizar Lista"))
			}),
			layout.Rigid(theme.PrimaryButton(th, &p.addBtn, "Novo Cliente").Layout),
		)
	}
}

func (p *MonitorPage) iconButton(th *material.Theme, click *widget.Clickable, icon icons.IconType, desc string) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		ic := icons.MustGet(icon)
		if ic == nil {
			return theme.OutlineButton(th, click, desc).Layout(gtx)
		}
		btn := material.IconButton(th, click, ic, desc)
		btn.Background = theme.Colors.Grey200
		btn.Color = theme.Colors.Grey800
		btn.Size = unit.Dp(20)
		btn.Inset = layout.UniformInset(unit.Dp(8))
		return btn.Layout(gtx)
	}
}

func (p *MonitorPage) layoutSearch(th *material.Theme) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
			layout.Flexed(1, p.searchField(th, &p.searchEmpresa, "Buscar por empresa...")),
			layout.Rigid(layout.Spacer{Width: theme.DefaultVSpacer}.Layout),
			layout.Flexed(1, p.searchField(th, &p.searchCNPJ, "Buscar por CNPJ...")),
		)
	}
}

func (p *MonitorPage) searchField(th *material.Theme, ed *widget.Editor, hint string) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		border := widget.Border{
			Color:        theme.Colors.Border,
			CornerRadius: theme.CornerRadius,
			Width:        theme.BorderWidthDefault,
		}
		return border.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						ic := icons.MustGet(icons.IconSearch)
						if ic == nil {
							return layout.Dimensions{}
						}
						return layout.Inset{Right: unit.Dp(6)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
							iconStyle := material.Icon(th, ic)
							iconStyle.Color = theme.Colors.Grey500
							gtx.Constraints.Max.X = gtx.Dp(unit.Dp(18))
							return iconStyle.Layout(gtx)
						})
					}),
					layout.Flexed(1, material.Editor(th, ed, hint).Layout),
				)
			})
		})
	}
}

func (p *MonitorPage) layoutStats(th *material.Theme) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		txt := fmt.Sprintf("Total: %d  |  Exibidos: %d  |  Selecionados: %d",
			len(p.clientes), len(p.filtered), len(p.selected))
		stats := material.Body2(th, txt)
		stats.Color = theme.Colors.TextMuted
		return stats.Layout(gtx)
	}
}

const (
	colEmpresa = 0.28
	colCNPJ    = 0.20
	colID      = 0.10
	colPeriodo = 0.12
	colStatus  = 0.10
	colCNDs    = 0.20
)

func (p *MonitorPage) layoutTableHeader(th *material.Theme) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		return layout.Background{}.Layout(gtx,
			func(gtx layout.Context) layout.Dimensions {
				paint.FillShape(gtx.Ops, theme.Colors.Grey200,
					clip.Rect{Max: gtx.Constraints.Min}.Op())
				return layout.Dimensions{Size: gtx.Constraints.Min}
			},
			func(gtx layout.Context) layout.Dimensions {
				return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					header := func(txt string) layout.Widget {
						lbl := material.Body2(th, txt)
						lbl.Font.Weight = font.SemiBold
						return lbl.Layout
					}
					return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
						layout.Rigid(material.CheckBox(th, &p.selectAllCheck, "").Layout),
						layout.Flexed(colEmpresa, header("Empresa")),
						layout.Flexed(colCNPJ, header("CNPJ")),
						layout.Flexed(colID, header("ID")),
						layout.Flexed(colPeriodo, header("Periodicidade")),
						layout.Flexed(colStatus, header("Status")),
						layout.Flexed(colCNDs, header("CNDs")),
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							gtx.Constraints.Min.X = gtx.Dp(unit.Dp(72))
							return header("Ações")(gtx)
						}),
					)
				})
			},
		)
	}
}

func (p *MonitorPage) layoutTable(th *material.Theme) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		if p.loading {
			return layout.Center.Layout(gtx, p.spinner.Layout)
		}
		if len(p.filtered) == 0 {
			msg := "Nenhum cliente cadastrado."
			if len(p.clientes) > 0 {
				msg = "Nenhum cliente encontrado para os filtros informados."
			}
			return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				empty := material.Body1(th, msg)
				empty.Color = theme.Colors.TextMuted
				return empty.Layout(gtx)
			})
		}

		return material.List(th, &p.tableList).Layout(gtx, len(p.filtered),
			func(gtx layout.Context, i int) layout.Dimensions {
				return p.layoutRow(gtx, th, i)
			})
	}
}

func (p *MonitorPage) layoutRow(gtx layout.Context, th *material.Theme, i int) layout.Dimensions {
	c := p.filtered[i]
	bg := theme.Colors.Background
	if i%2 == 1 {
		bg = theme.Colors.BackgroundAlt
	}

	cell := func(txt string) layout.Widget {
		lbl := material.Body2(th, txt)
		lbl.MaxLines = 1
		return lbl.Layout
	}

	cnds := make([]string, 0, 3)
	if c.Nacional {
		cnds = append(cnds, "Nacional")
	}
	if c.Municipal {
		cnds = append(cnds, "Municipal")
	}
	if c.Estadual {
		cnds = append(cnds, "Estadual")
	}
	cndsTxt := strings.Join(cnds, ", ")
	if cndsTxt == "" {
		cndsTxt = "—"
	}

	return layout.Background{}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			paint.FillShape(gtx.Ops, bg, clip.Rect{Max: gtx.Constraints.Min}.Op())
			return layout.Dimensions{Size: gtx.Constraints.Min}
		},
		func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(material.CheckBox(th, &p.rowChecks[i], "").Layout),
					layout.Flexed(colEmpresa, cell(c.Empresa.NomeEmpresa)),
					layout.Flexed(colCNPJ, cell(c.CNPJ)),
					layout.Flexed(colID, cell(c.Empresa.IDEmpresa)),
					layout.Flexed(colPeriodo, cell(fmt.Sprintf("%d dias", c.Periodicidade))),
					layout.Flexed(colStatus, p.statusBadge(th, c.StatusCliente)),
					layout.Flexed(colCNDs, cell(cndsTxt)),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						gtx.Constraints.Min.X = gtx.Dp(unit.Dp(72))
						return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
							layout.Rigid(p.rowIconButton(th, &p.rowEditBtns[i], icons.IconEdit, theme.Colors.Primary, "Editar")),
							layout.Rigid(layout.Spacer{Width: theme.TightVSpacer}.Layout),
							layout.Rigid(p.rowIconButton(th, &p.rowDeleteBtns[i], icons.IconDelete, theme.Colors.Danger, "Excluir")),
						)
					}),
				)
			})
		},
	)
}

func (p *MonitorPage) rowIconButton(th *material.Theme, click *widget.Clickable, icon icons.IconType, tint color.NRGBA, desc string) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		ic := icons.MustGet(icon)
		if ic == nil {
			return layout.Dimensions{}
		}
		btn := material.IconButton(th, click, ic, desc)
		btn.Background = theme.Colors.Background
		btn.Color = tint
		btn.Size = unit.Dp(18)
		btn.Inset = layout.UniformInset(unit.Dp(4))
		return btn.Layout(gtx)
	}
}

func (p *MonitorPage) statusBadge(th *material.Theme, status string) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		lbl := material.Body2(th, status)
		if strings.EqualFold(status, "ativo") {
			lbl.Color = theme.Colors.Success
		} else {
			lbl.Color = theme.Colors.TextMuted
		}
		lbl.Font.Weight = font.SemiBold
		return lbl.Layout(gtx)
	}
}
