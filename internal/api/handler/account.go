package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/Myudi422/backend-adsense/internal/domain"
	"github.com/Myudi422/backend-adsense/internal/usecases/registry"
	"github.com/Myudi422/backend-adsense/pkg/apiErrors"
	"github.com/Myudi422/backend-adsense/pkg/log"
)

// AccountList lista as contas cadastradas, sem credenciais
func AccountList(service registry.AccountManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("accounts: listing accounts")

		accounts, err := service.ListAccounts()
		if err != nil {
			logger.WithField("error", err.Error()).Error("accounts: failed to list accounts")

			apiErrors.WriteError(w, registry.CodeFor(err), err.Error(), nil)
			return
		}

		writeJSON(w, accounts)
	})
}

// GetAccount retorna uma conta pelo identificador, sem credenciais
func GetAccount(service registry.AccountManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountKey := httprouter.ParamsFromContext(r.Context()).ByName("accountKey")
		logger.WithField("account_key", accountKey).Info("accounts: fetching account")

		account, err := service.GetAccount(accountKey)
		if err != nil {
			apiErrors.WriteError(w, registry.CodeFor(err), err.Error(), nil)
			return
		}

		writeJSON(w, account.ToResponse())
	})
}

// CreateAccount cadastra uma nova conta
func CreateAccount(service registry.AccountManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		account := &domain.Account{}
		if err := json.NewDecoder(r.Body).Decode(account); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		logger.WithField("account_key", account.Key).Info("accounts: creating account")

		response, err := service.CreateAccount(account)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_key": account.Key,
				"error":       err.Error(),
			}).Warn("accounts: failed to create account")

			apiErrors.WriteError(w, registry.CodeFor(err), err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithField("error", err.Error()).Error("accounts: failed to encode response")
		}
	})
}

// UpdateAccount atualiza os campos presentes na requisição
func UpdateAccount(service registry.AccountManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountKey := httprouter.ParamsFromContext(r.Context()).ByName("accountKey")
		logger.WithField("account_key", accountKey).Info("accounts: updating account")

		req := &domain.UpdateAccountRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		response, err := service.UpdateAccount(accountKey, req)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_key": accountKey,
				"error":       err.Error(),
			}).Warn("accounts: failed to update account")

			apiErrors.WriteError(w, registry.CodeFor(err), err.Error(), nil)
			return
		}

		writeJSON(w, response)
	})
}

// DeleteAccount remove uma conta do cadastro
func DeleteAccount(service registry.AccountManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountKey := httprouter.ParamsFromContext(r.Context()).ByName("accountKey")
		logger.WithField("account_key", accountKey).Info("accounts: deleting account")

		if err := service.DeleteAccount(accountKey); err != nil {
			apiErrors.WriteError(w, registry.CodeFor(err), err.Error(), nil)
			return
		}

		writeJSON(w, map[string]any{
			"message":     "account deleted",
			"account_key": accountKey,
		})
	})
}

// DatabaseBackup cria um backup do arquivo de contas
func DatabaseBackup(service registry.AccountManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("database: creating backup")

		backup, err := service.Backup()
		if err != nil {
			logger.WithField("error", err.Error()).Error("database: failed to create backup")

			apiErrors.WriteError(w, registry.CodeFor(err), err.Error(), nil)
			return
		}

		writeJSON(w, backup)
	})
}

type restoreRequest struct {
	BackupID string `json:"backup_id"`
}

// DatabaseRestore substitui o arquivo de contas por um backup
func DatabaseRestore(service registry.AccountManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		req := &restoreRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		logger.WithField("backup_id", req.BackupID).Info("database: restoring backup")

		if err := service.Restore(req.BackupID); err != nil {
			logger.WithFields(log.Fields{
				"backup_id": req.BackupID,
				"error":     err.Error(),
			}).Warn("database: failed to restore backup")

			apiErrors.WriteError(w, registry.CodeFor(err), err.Error(), nil)
			return
		}

		writeJSON(w, map[string]any{
			"message":   "backup restored",
			"backup_id": req.BackupID,
		})
	})
}

// DatabaseStats retorna o estado do arquivo de contas e dos backups
func DatabaseStats(service registry.AccountManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.Stats()
		if err != nil {
			apiErrors.WriteError(w, registry.CodeFor(err), err.Error(), nil)
			return
		}

		writeJSON(w, stats)
	})
}
