package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API
const (
	// Erros de conta (1000-1999)
	ErrAccountNotFound      = "ACC_001" // Conta não encontrada
	ErrAccountDisabled      = "ACC_002" // Conta desativada
	ErrAccountAlreadyExists = "ACC_003" // Conta já existe
	ErrMissingCredentials   = "ACC_004" // Conta sem credenciais configuradas

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidDateFormat   = "VAL_003" // Formato de data inválido
	ErrRouteNotFound       = "VAL_004" // Rota inexistente
	ErrMethodNotAllowed    = "VAL_005" // Método não permitido para a rota

	// Erros de autenticação (3000-3999)
	ErrInvalidToken = "AUTH_001" // Token inválido
	ErrExpiredToken = "AUTH_002" // Token expirado

	// Erros do servidor e integrações (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrRegistryOperation = "SRV_003" // Erro no arquivo de registro de contas
	ErrUpstreamService   = "EXT_001" // Erro na API de relatórios do AdSense
	ErrUpstreamTimeout   = "EXT_002" // Tempo limite excedido na API de relatórios
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrAccountNotFound:      http.StatusNotFound,
	ErrAccountDisabled:      http.StatusForbidden,
	ErrAccountAlreadyExists: http.StatusConflict,
	ErrMissingCredentials:   http.StatusUnprocessableEntity,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrMissingRequiredData:  http.StatusBadRequest,
	ErrInvalidDateFormat:    http.StatusBadRequest,
	ErrRouteNotFound:        http.StatusNotFound,
	ErrMethodNotAllowed:     http.StatusMethodNotAllowed,
	ErrInvalidToken:         http.StatusUnauthorized,
	ErrExpiredToken:         http.StatusUnauthorized,
	ErrInternalServer:       http.StatusInternalServerError,
	ErrDatabaseOperation:    http.StatusInternalServerError,
	ErrRegistryOperation:    http.StatusInternalServerError,
	ErrUpstreamService:      http.StatusBadGateway,
	ErrUpstreamTimeout:      http.StatusGatewayTimeout,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
