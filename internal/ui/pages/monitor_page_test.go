package pages

import (
	"sync"
	"testing"
	"time"

	"gioui.org/widget/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/core"
	"github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/data/models"
	"github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/services"
	"github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/ui/theme"
)

type toastRecord struct {
	title   string
	message string
	isError bool
}

// fakeHost captura as closures agendadas e os toasts exibidos, fazendo o
// papel da janela nos testes.
type fakeHost struct {
	th *material.Theme
	ch chan func()

	mu     sync.Mutex
	toasts []toastRecord
}

func newFakeHost() *fakeHost {
	return &fakeHost{th: theme.NewAppTheme(), ch: make(chan func(), 16)}
}

func (h *fakeHost) Execute(fn func())      { h.ch <- fn }
func (h *fakeHost) Invalidate()            {}
func (h *fakeHost) Theme() *material.Theme { return h.th }
func (h *fakeHost) ShowGlobalMessage(title, message string, isError bool, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.toasts = append(h.toasts, toastRecord{title: title, message: message, isError: isError})
}

func (h *fakeHost) lastToast(t *testing.T) toastRecord {
	t.Helper()
	h.mu.Lock()
	defer h.mu.Unlock()
	require.NotEmpty(t, h.toasts)
	return h.toasts[len(h.toasts)-1]
}

// runNext executa a próxima closure agendada na "thread de UI".
func (h *fakeHost) runNext(t *testing.T) {
	t.Helper()
	select {
	case fn := <-h.ch:
		fn()
	case <-time.After(2 * time.Second):
		t.Fatal("nenhuma closure agendada chegou")
	}
}

// fakeClienteService permite controlar cada operação por teste.
type fakeClienteService struct {
	getAll     func() ([]models.Cliente, error)
	create     func(models.ClienteCreate) (*models.Cliente, error)
	update     func(models.ClienteCreate) (*models.Cliente, error)
	deleteMany func([]int64) ([]services.DeleteResult, error)
}

func (f *fakeClienteService) GetAllClientes() ([]models.Cliente, error) {
	return f.getAll()
}
func (f *fakeClienteService) GetClienteByID(id int64) (*models.Cliente, error) {
	return nil, core.ErrNotFound
}
func (f *fakeClienteService) CreateCliente(d models.ClienteCreate) (*models.Cliente, error) {
	return f.create(d)
}
func (f *fakeClienteService) UpdateCliente(d models.ClienteCreate) (*models.Cliente, error) {
	return f.update(d)
}
func (f *fakeClienteService) DeleteCliente(id int64) error {
	_, err := f.deleteMany([]int64{id})
	return err
}
func (f *fakeClienteService) DeleteClientes(ids []int64) ([]services.DeleteResult, error) {
	return f.deleteMany(ids)
}

func fixtureClientes() []models.Cliente {
	return []models.Cliente{
		{ID: 1, CNPJ: "11.222.333/0001-81", Periodicidade: 30, StatusCliente: "ativo",
			Empresa: models.Empresa{IDEmpresa: "EMP001", NomeEmpresa: "Padaria Modelo", CNPJ: "11.222.333/0001-81"}},
		{ID: 2, CNPJ: "44.555.666/0001-22", Periodicidade: 15, StatusCliente: "ativo",
			Empresa: models.Empresa{IDEmpresa: "EMP002", NomeEmpresa: "Mercado Central", CNPJ: "44.555.666/0001-22"}},
		{ID: 3, CNPJ: "77.888.999/0001-33", Periodicidade: 60, StatusCliente: "inativo",
			Empresa: models.Empresa{IDEmpresa: "EMP003", NomeEmpresa: "padaria do bairro", CNPJ: "77.888.999/0001-33"}},
	}
}

func newTestPage(svc services.ClienteService) (*MonitorPage, *fakeHost) {
	host := newFakeHost()
	cfg := &core.Config{ExportDir: "exports"}
	return NewMonitorPage(host, svc, cfg), host
}

func TestFilterClientes(t *testing.T) {
	clientes := fixtureClientes()

	t.Run("sem filtros retorna tudo", func(t *testing.T) {
		assert.Len(t, filterClientes(clientes, "", ""), 3)
	})

	t.Run("empresa não diferencia maiúsculas", func(t *testing.T) {
		got := filterClientes(clientes, "PADARIA", "")
		require.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(3), got[1].ID)
	})

	t.Run("cnpj só filtra quando não vazio", func(t *testing.T) {
		got := filterClientes(clientes, "", "44.555")
		require.Len(t, got, 1)
		assert.Equal(t, int64(2), got[0].ID)
	})

	t.Run("filtros combinados", func(t *testing.T) {
		got := filterClientes(clientes, "padaria", "77.")
		require.Len(t, got, 1)
		assert.Equal(t, int64(3), got[0].ID)
	})

	t.Run("resultado é subconjunto da entrada", func(t *testing.T) {
		got := filterClientes(clientes, "a", "0001")
		byID := map[int64]models.Cliente{}
		for _, c := range clientes {
			byID[c.ID] = c
		}
		for _, c := range got {
			assert.Equal(t, byID[c.ID], c)
		}
	})
}

func TestCargaInicial(t *testing.T) {
	t.Run("sucesso popula a lista e zera a seleção", func(t *testing.T) {
		svc := &fakeClienteService{getAll: func() ([]models.Cliente, error) {
			return fixtureClientes(), nil
		}}
		p, host := newTestPage(svc)
		p.selected[99] = struct{}{}

		p.OnNavigatedTo(nil)
		host.runNext(t)

		assert.Len(t, p.clientes, 3)
		assert.Len(t, p.filtered, 3)
		assert.Empty(t, p.selected)
		assert.False(t, p.loading)
	})

	t.Run("falha esvazia a lista e mostra erro", func(t *testing.T) {
		svc := &fakeClienteService{getAll: func() ([]models.Cliente, error) {
			return nil, core.NewAPIError(500, "banco indisponível")
		}}
		p, host := newTestPage(svc)

		p.OnNavigatedTo(nil)
		host.runNext(t)

		assert.Empty(t, p.clientes)
		toast := host.lastToast(t)
		assert.True(t, toast.isError)
		assert.Equal(t, "Erro ao carregar clientes", toast.title)
	})

	t.Run("navegações seguintes não recarregam", func(t *testing.T) {
		calls := 0
		svc := &fakeClienteService{getAll: func() ([]models.Cliente, error) {
			calls++
			return nil, nil
		}}
		p, host := newTestPage(svc)
		p.OnNavigatedTo(nil)
		host.runNext(t)
		p.OnNavigatedTo(nil)
		assert.Equal(t, 1, calls)
	})
}

func TestSelecao(t *testing.T) {
	svc := &fakeClienteService{getAll: func() ([]models.Cliente, error) {
		return fixtureClientes(), nil
	}}
	p, host := newTestPage(svc)
	p.OnNavigatedTo(nil)
	host.runNext(t)

	t.Run("selecionar tudo usa exatamente a visão filtrada", func(t *testing.T) {
		p.searchEmpresa.SetText("padaria")
		p.applyFilter()
		p.toggleSelectAll(true)

		assert.Len(t, p.selected, 2)
		_, ok := p.selected[2]
		assert.False(t, ok)
		assert.True(t, p.allFilteredSelected())
	})

	t.Run("estreitar o filtro mantém a seleção mas desmarca o cabeçalho", func(t *testing.T) {
		p.searchEmpresa.SetText("padaria modelo")
		p.applyFilter()

		assert.Len(t, p.selected, 2) // Nada é podado.
		assert.Len(t, p.filtered, 1)
		assert.False(t, p.allFilteredSelected())
		assert.False(t, p.selectAllCheck.Value)
	})

	t.Run("desmarcar tudo esvazia a seleção", func(t *testing.T) {
		p.searchEmpresa.SetText("")
		p.applyFilter()
		p.toggleSelectAll(false)
		assert.Empty(t, p.selected)
	})
}

func TestExclusaoUnica(t *testing.T) {
	var deleted [][]int64
	svc := &fakeClienteService{
		getAll: func() ([]models.Cliente, error) { return fixtureClientes(), nil },
		deleteMany: func(ids []int64) ([]services.DeleteResult, error) {
			deleted = append(deleted, ids)
			results := make([]services.DeleteResult, len(ids))
			for i, id := range ids {
				results[i] = services.DeleteResult{ID: id}
			}
			return results, nil
		},
	}
	p, host := newTestPage(svc)
	p.OnNavigatedTo(nil)
	host.runNext(t)

	// O ícone de lixeira da linha sobrescreve a seleção corrente.
	p.selected = map[int64]struct{}{1: {}, 2: {}}
	p.openDeleteFor(p.filtered[2])

	assert.True(t, p.deleteModal.IsOpen())
	assert.Equal(t, map[int64]struct{}{3: {}}, p.selected)

	require.NoError(t, p.confirmDelete())
	require.Len(t, deleted, 1)
	assert.Equal(t, []int64{3}, deleted[0])

	toast := host.lastToast(t)
	assert.False(t, toast.isError)

	// A recarga agendada zera a seleção.
	host.runNext(t) // executa loadClientes
	host.runNext(t) // entrega o resultado da carga
	assert.Empty(t, p.selected)
	assert.Len(t, p.clientes, 3)
}

func TestExclusaoEmLoteParcial(t *testing.T) {
	svc := &fakeClienteService{
		getAll: func() ([]models.Cliente, error) { return fixtureClientes(), nil },
		deleteMany: func(ids []int64) ([]services.DeleteResult, error) {
			results := make([]services.DeleteResult, len(ids))
			for i, id := range ids {
				results[i] = services.DeleteResult{ID: id}
				if id == 2 {
					results[i].Err = core.NewAPIError(409, "pendências")
				}
			}
			return results, core.NewAPIError(409, "falha parcial")
		},
	}
	p, host := newTestPage(svc)
	p.OnNavigatedTo(nil)
	host.runNext(t)

	p.toggleSelectAll(true)
	p.openBulkDelete()
	assert.True(t, p.deleteModal.IsOpen())

	err := p.confirmDelete()
	require.Error(t, err)

	toast := host.lastToast(t)
	assert.True(t, toast.isError)
	assert.Contains(t, toast.message, "1 de 3")
}

func TestAtualizacaoRejeitadaPreservaEstado(t *testing.T) {
	svc := &fakeClienteService{
		getAll: func() ([]models.Cliente, error) { return fixtureClientes(), nil },
		update: func(models.ClienteCreate) (*models.Cliente, error) {
			return nil, core.NewAPIError(409, "CNPJ já cadastrado")
		},
	}
	p, host := newTestPage(svc)
	p.OnNavigatedTo(nil)
	host.runNext(t)

	c := p.filtered[0]
	p.formModal.Open(&c)
	draft := models.FromCliente(&c)

	err := p.submitForm(draft)
	require.Error(t, err)

	// Lista intacta, nenhum reload agendado, toast de erro exibido.
	assert.Len(t, p.clientes, 3)
	assert.Empty(t, host.ch)
	toast := host.lastToast(t)
	assert.True(t, toast.isError)
	assert.Equal(t, "Erro ao salvar cliente", toast.title)
}

func TestCriacaoComSucessoRecarrega(t *testing.T) {
	created := false
	svc := &fakeClienteService{
		getAll: func() ([]models.Cliente, error) { return fixtureClientes(), nil },
		create: func(d models.ClienteCreate) (*models.Cliente, error) {
			created = true
			c := models.Cliente{ID: 10, CNPJ: d.CNPJ, Empresa: d.Empresa}
			return &c, nil
		},
	}
	p, host := newTestPage(svc)
	p.OnNavigatedTo(nil)
	host.runNext(t)

	p.formModal.Open(nil)
	draft := models.NewClienteCreate()
	draft.CNPJ = "11.222.333/0001-81"
	draft.Empresa = models.Empresa{IDEmpresa: "NOVO", NomeEmpresa: "Novo Cliente", CNPJ: "11.222.333/0001-81"}

	require.NoError(t, p.submitForm(draft))
	assert.True(t, created)

	toast := host.lastToast(t)
	assert.False(t, toast.isError)

	host.runNext(t) // loadClientes agendado
	host.runNext(t) // resultado da carga
	assert.Len(t, p.clientes, 3)
}
