package domain

import (
	"context"
	"time"
)

type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "ACTIVE"
	AccountStatusInactive AccountStatus = "INACTIVE"
)

// TokenSource entrega um access token válido para chamadas à API de relatórios.
// A implementação cuida do refresh quando o token expira.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Credentials guarda as credenciais OAuth de uma conta.
// Nunca serializadas em respostas da API.
type Credentials struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RefreshToken string `json:"refresh_token"`
}

func (c Credentials) IsZero() bool {
	return c.ClientID == "" && c.ClientSecret == "" && c.RefreshToken == ""
}

type Account struct {
	Key               string        `json:"key"`
	DisplayName       string        `json:"display_name"`
	ExternalAccountID string        `json:"external_account_id"`
	Status            AccountStatus `json:"status"`
	Credentials       Credentials   `json:"credentials"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

type UpdateAccountRequest struct {
	DisplayName       *string        `json:"display_name"`
	ExternalAccountID *string        `json:"external_account_id"`
	Status            *AccountStatus `json:"status"`
	Credentials       *Credentials   `json:"credentials"`
}

type AccountResponse struct {
	Key               string        `json:"key"`
	DisplayName       string        `json:"display_name"`
	ExternalAccountID string        `json:"external_account_id"`
	Status            AccountStatus `json:"status"`
	HasCredentials    bool          `json:"has_credentials"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// ToResponse converte a conta para o formato de resposta, sem credenciais
func (a *Account) ToResponse() *AccountResponse {
	return &AccountResponse{
		Key:               a.Key,
		DisplayName:       a.DisplayName,
		ExternalAccountID: a.ExternalAccountID,
		Status:            a.Status,
		HasCredentials:    !a.Credentials.IsZero(),
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}
