package services

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/core"
	"github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/data/models"
)

func clienteFixture(id int64) models.Cliente {
	return models.Cliente{
		ID:            id,
		CNPJ:          "11.222.333/0001-81",
		Periodicidade: 30,
		StatusCliente: "ativo",
		Nacional:      true,
		Empresa: models.Empresa{
			IDEmpresa:   "EMP001",
			NomeEmpresa: "Empresa Modelo LTDA",
			CNPJ:        "11.222.333/0001-81",
		},
	}
}

func newTestService(handler http.Handler) (ClienteService, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClienteService(srv.URL, srv.Client()), srv
}

func TestGetAllClientes(t *testing.T) {
	t.Run("lista ok", func(t *testing.T) {
		svc, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/clientes", r.URL.Path)
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode([]models.Cliente{clienteFixture(1), clienteFixture(2)})
		}))
		defer srv.Close()

		clientes, err := svc.GetAllClientes()
		require.NoError(t, err)
		require.Len(t, clientes, 2)
		assert.Equal(t, int64(1), clientes[0].ID)
		assert.Equal(t, "Empresa Modelo LTDA", clientes[0].Empresa.NomeEmpresa)
	})

	t.Run("erro com corpo JSON vira APIError", func(t *testing.T) {
		svc, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"banco indisponível"}`))
		}))
		defer srv.Close()

		_, err := svc.GetAllClientes()
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrAPI))

		var apiErr *core.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Equal(t, "banco indisponível", apiErr.Message)
	})

	t.Run("erro sem corpo usa status como mensagem", func(t *testing.T) {
		svc, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := svc.GetAllClientes()
		var apiErr *core.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "502 Bad Gateway", apiErr.Message)
	})

	t.Run("falha de transporte vira ErrNetwork", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close() // Servidor já encerrado: conexão recusada.
		svc := NewClienteService(srv.URL, http.DefaultClient)

		_, err := svc.GetAllClientes()
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrNetwork))
	})
}

func TestGetClienteByID(t *testing.T) {
	t.Run("encontrado", func(t *testing.T) {
		svc, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/clientes/42", r.URL.Path)
			_ = json.NewEncoder(w).Encode(clienteFixture(42))
		}))
		defer srv.Close()

		c, err := svc.GetClienteByID(42)
		require.NoError(t, err)
		assert.Equal(t, int64(42), c.ID)
	})

	t.Run("404 vira ErrNotFound", func(t *testing.T) {
		svc, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"cliente não encontrado"}`))
		}))
		defer srv.Close()

		_, err := svc.GetClienteByID(999)
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrNotFound))
		assert.True(t, errors.Is(err, core.ErrAPI))
	})
}

func TestCreateCliente(t *testing.T) {
	svc, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/clientes", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var received models.ClienteCreate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		assert.Equal(t, "EMP001", received.Empresa.IDEmpresa)

		created := clienteFixture(7)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(created)
	}))
	defer srv.Close()

	created, err := svc.CreateCliente(models.FromCliente(&models.Cliente{
		CNPJ:          "11.222.333/0001-81",
		Periodicidade: 30,
		StatusCliente: "ativo",
		Empresa:       models.Empresa{IDEmpresa: "EMP001", NomeEmpresa: "Empresa Modelo LTDA", CNPJ: "11.222.333/0001-81"},
	}))
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
}

func TestUpdateCliente(t *testing.T) {
	t.Run("PUT endereçado pelo idEmpresa", func(t *testing.T) {
		svc, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/clientes/EMP001", r.URL.Path)
			_ = json.NewEncoder(w).Encode(clienteFixture(7))
		}))
		defer srv.Close()

		data := models.FromCliente(&models.Cliente{Empresa: models.Empresa{IDEmpresa: "EMP001"}})
		updated, err := svc.UpdateCliente(data)
		require.NoError(t, err)
		assert.Equal(t, int64(7), updated.ID)
	})

	t.Run("idEmpresa vazio falha sem chamada de rede", func(t *testing.T) {
		called := false
		svc, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer srv.Close()

		_, err := svc.UpdateCliente(models.ClienteCreate{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrInvalidInput))
		assert.False(t, called)
	})
}

func TestDeleteCliente(t *testing.T) {
	svc, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/clientes/5", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, svc.DeleteCliente(5))
}

func TestDeleteClientes(t *testing.T) {
	t.Run("todas as exclusões ok", func(t *testing.T) {
		var mu sync.Mutex
		seen := map[string]bool{}
		svc, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			seen[r.URL.Path] = true
			mu.Unlock()
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		results, err := svc.DeleteClientes([]int64{1, 2, 3})
		require.NoError(t, err)
		require.Len(t, results, 3)
		for _, r := range results {
			assert.NoError(t, r.Err)
		}
		assert.Len(t, seen, 3)
	})

	t.Run("falha parcial produz lista por id e erro agregado", func(t *testing.T) {
		svc, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/clientes/2" {
				w.WriteHeader(http.StatusConflict)
				_, _ = w.Write([]byte(`{"error":"cliente possui pendências"}`))
				return
			}
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		results, err := svc.DeleteClientes([]int64{1, 2, 3})
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrAPI))
		require.Len(t, results, 3)

		byID := map[int64]error{}
		for _, r := range results {
			byID[r.ID] = r.Err
		}
		assert.NoError(t, byID[1])
		assert.Error(t, byID[2])
		assert.NoError(t, byID[3])
	})
}
