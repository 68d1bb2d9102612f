package adsensedomain

import (
	"fmt"
)

// ReportHeader descreve uma coluna do relatório
type ReportHeader struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	CurrencyCode string `json:"currencyCode,omitempty"`
}

type ReportCell struct {
	Value string `json:"value"`
}

type ReportRow struct {
	Cells []ReportCell `json:"cells"`
}

// ReportResponse é a resposta crua do endpoint reports:generate
type ReportResponse struct {
	Headers   []ReportHeader `json:"headers"`
	Rows      []ReportRow    `json:"rows"`
	Totals    *ReportRow     `json:"totals,omitempty"`
	TotalRows int            `json:"totalMatchedRows,string,omitempty"`
}

// Account é uma conta do publisher retornada pela listagem upstream
type Account struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	State       string `json:"state"`
}

type ListAccountsResponse struct {
	Accounts []Account `json:"accounts"`
}

// ErrorResponse representa a estrutura de erro da API de relatórios
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// UpstreamError indica uma falha retornada pela API de relatórios
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("api de relatórios retornou %d: %s", e.StatusCode, e.Message)
}

// IsAuthError verifica se o erro é de credencial inválida ou expirada
func (e *UpstreamError) IsAuthError() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}
