package services

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/core"
	appLogger "github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/core/logger"
	"github.com/Dukorsa/CND_MONITORAMENTO_GO/internal/data/models"
)

// DeleteResult registra o desfecho da exclusão de um único cliente dentro
// de uma operação em lote.
type DeleteResult struct {
	ID  int64
	Err error
}

// ClienteService expõe as operações da API remota de clientes CND.
type ClienteService interface {
	GetAllClientes() ([]models.Cliente, error)
	GetClienteByID(id int64) (*models.Cliente, error)
	CreateCliente(data models.ClienteCreate) (*models.Cliente, error)
	UpdateCliente(data models.ClienteCreate) (*models.Cliente, error)
	DeleteCliente(id int64) error
	DeleteClientes(ids []int64) ([]DeleteResult, error)
}

type clienteService struct {
	baseURL    string
	httpClient *http.Client
}

// NewClienteService cria o serviço de clientes apontando para a URL base da
// API (sem barra final). O *http.Client é injetado para permitir testes com
// httptest e customização de transporte.
func NewClienteService(baseURL string, httpClient *http.Client) ClienteService {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &clienteService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// apiErrorBody é o envelope de erro que o backend retorna em respostas
// não-2xx. Alguns endpoints usam "error", outros "message".
type apiErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// doRequest executa a chamada HTTP e normaliza o resultado: respostas 2xx
// retornam o corpo bruto (nil para 204), falhas de transporte viram
// core.ErrNetwork e respostas não-2xx viram *core.APIError com a mensagem
// extraída do corpo.
func (s *clienteService) doRequest(method, path string, payload interface{}) ([]byte, error) {
	var bodyReader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, core.WrapErrorf(err, "falha ao serializar payload para %s %s", method, path)
		}
		bodyReader = bytes.NewReader(data)
	}

	fullURL := s.baseURL + path
	req, err := http.NewRequest(method, fullURL, bodyReader)
	if err != nil {
		return nil, core.WrapErrorf(err, "falha ao montar requisição %s %s", method, path)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := appLogger.WithFields(map[string]interface{}{
		"method":     method,
		"url":        fullURL,
		"request_id": requestID,
	})
	log.Debug("Chamando API de clientes")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.WithField("error", err.Error()).Error("Falha de rede na chamada à API")
		return nil, fmt.Errorf("%w: %v", core.ErrNetwork, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: falha ao ler resposta: %v", core.ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := extractErrorMessage(respBody)
		if msg == "" {
			msg = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		}
		log.WithField("status", resp.StatusCode).Warnf("API retornou erro: %s", msg)
		return nil, core.NewAPIError(resp.StatusCode, msg)
	}

	if resp.StatusCode == http.StatusNoContent || len(respBody) == 0 {
		return nil, nil
	}
	return respBody, nil
}

func extractErrorMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var parsed apiErrorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	if parsed.Error != "" {
		return parsed.Error
	}
	return parsed.Message
}

func (s *clienteService) GetAllClientes() ([]models.Cliente, error) {
	body, err := s.doRequest(http.MethodGet, "/clientes", nil)
	if err != nil {
		return nil, err
	}
	var clientes []models.Cliente
	if err := json.Unmarshal(body, &clientes); err != nil {
		return nil, core.WrapErrorf(err, "falha ao decodificar lista de clientes")
	}
	appLogger.Infof("Lista de clientes carregada: %d registros", len(clientes))
	return clientes, nil
}

func (s *clienteService) GetClienteByID(id int64) (*models.Cliente, error) {
	body, err := s.doRequest(http.MethodGet, fmt.Sprintf("/clientes/%d", id), nil)
	if err != nil {
		return nil, err
	}
	var cliente models.Cliente
	if err := json.Unmarshal(body, &cliente); err != nil {
		return nil, core.WrapErrorf(err, "falha ao decodificar cliente %d", id)
	}
	return &cliente, nil
}

func (s *clienteService) CreateCliente(data models.ClienteCreate) (*models.Cliente, error) {
	body, err := s.doRequest(http.MethodPost, "/clientes", data)
	if err != nil {
		return nil, err
	}
	var created models.Cliente
	if len(body) > 0 {
		if err := json.Unmarshal(body, &created); err != nil {
			return nil, core.WrapErrorf(err, "falha ao decodificar cliente criado")
		}
	}
	appLogger.Infof("Cliente criado: %s (%s)", created.Empresa.NomeEmpresa, created.CNPJ)
	return &created, nil
}

// UpdateCliente envia o registro completo via PUT, endereçado pela chave
// externa Empresa.IDEmpresa. A ausência da chave falha localmente, sem
// tocar a rede.
func (s *clienteService) UpdateCliente(data models.ClienteCreate) (*models.Cliente, error) {
	idEmpresa := strings.TrimSpace(data.Empresa.IDEmpresa)
	if idEmpresa == "" {
		return nil, fmt.Errorf("%w: ID da empresa é obrigatório para atualização", core.ErrInvalidInput)
	}

	path := "/clientes/" + url.PathEscape(idEmpresa)
	body, err := s.doRequest(http.MethodPut, path, data)
	if err != nil {
		return nil, err
	}
	var updated models.Cliente
	if len(body) > 0 {
		if err := json.Unmarshal(body, &updated); err != nil {
			return nil, core.WrapErrorf(err, "falha ao decodificar cliente atualizado")
		}
	}
	appLogger.Infof("Cliente atualizado: empresa %s", idEmpresa)
	return &updated, nil
}

func (s *clienteService) DeleteCliente(id int64) error {
	_, err := s.doRequest(http.MethodDelete, fmt.Sprintf("/clientes/%d", id), nil)
	if err != nil {
		return err
	}
	appLogger.Infof("Cliente %d excluído", id)
	return nil
}

// DeleteClientes dispara as exclusões em paralelo e devolve o desfecho de
// cada uma na mesma ordem dos ids recebidos. O erro agregado é não-nulo se
// qualquer exclusão falhou; a lista permite ao chamador saber exatamente
// quais ids sobraram.
func (s *clienteService) DeleteClientes(ids []int64) ([]DeleteResult, error) {
	results := make([]DeleteResult, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id int64) {
			defer wg.Done()
			results[i] = DeleteResult{ID: id, Err: s.DeleteCliente(id)}
		}(i, id)
	}
	wg.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return results, fmt.Errorf("%w: falha ao excluir %d de %d clientes", core.ErrAPI, failed, len(ids))
	}
	return results, nil
}
