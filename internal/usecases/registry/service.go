package registry

import (
	"github.com/pkg/errors"

	store "github.com/Myudi422/backend-adsense/infrastructure/registry"
	"github.com/Myudi422/backend-adsense/internal/domain"
	"github.com/Myudi422/backend-adsense/pkg/apiErrors"
	"github.com/Myudi422/backend-adsense/pkg/log"
)

// AccountManager administra o cadastro de contas e os backups do arquivo
type AccountManager interface {
	ListAccounts() ([]*domain.AccountResponse, error)
	GetAccount(key string) (*domain.Account, error)
	CreateAccount(account *domain.Account) (*domain.AccountResponse, error)
	UpdateAccount(key string, req *domain.UpdateAccountRequest) (*domain.AccountResponse, error)
	DeleteAccount(key string) error
	PersistExternalAccountID(key, externalAccountID string) error
	Backup() (*store.BackupInfo, error)
	Restore(backupID string) error
	Stats() (*store.StoreStats, error)
}

type Service struct {
	store store.Store
}

func NewService(s store.Store) AccountManager {
	return &Service{store: s}
}

// ListAccounts lista as contas cadastradas, sem credenciais
func (s *Service) ListAccounts() ([]*domain.AccountResponse, error) {
	accounts, err := s.store.List()
	if err != nil {
		return nil, errors.Wrap(ErrStoreOperation, err.Error())
	}

	responses := make([]*domain.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, account.ToResponse())
	}

	return responses, nil
}

// GetAccount retorna a conta completa, com credenciais, para uso interno
func (s *Service) GetAccount(key string) (*domain.Account, error) {
	if key == "" {
		return nil, ErrAccountKeyRequired
	}

	account, err := s.store.Get(key)
	if err != nil {
		return nil, errors.Wrap(ErrStoreOperation, err.Error())
	}

	if account == nil {
		return nil, NewAccountErrorWithKey(ErrAccountNotFound, apiErrors.ErrAccountNotFound, key)
	}

	return account, nil
}

func (s *Service) CreateAccount(account *domain.Account) (*domain.AccountResponse, error) {
	if account.Key == "" {
		return nil, ErrAccountKeyRequired
	}

	if account.Status == "" {
		account.Status = domain.AccountStatusActive
	}

	if err := validateStatus(account.Status); err != nil {
		return nil, err
	}

	existing, err := s.store.Get(account.Key)
	if err != nil {
		return nil, errors.Wrap(ErrStoreOperation, err.Error())
	}

	if existing != nil {
		return nil, NewAccountErrorWithKey(ErrAccountAlreadyExists, apiErrors.ErrAccountAlreadyExists, account.Key)
	}

	if err := s.store.Put(account); err != nil {
		return nil, errors.Wrap(ErrStoreOperation, err.Error())
	}

	log.L.WithField("account_key", account.Key).Info("registry: account created")

	return account.ToResponse(), nil
}

// UpdateAccount aplica apenas os campos presentes na requisição
func (s *Service) UpdateAccount(key string, req *domain.UpdateAccountRequest) (*domain.AccountResponse, error) {
	account, err := s.GetAccount(key)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		account.DisplayName = *req.DisplayName
	}

	if req.ExternalAccountID != nil {
		account.ExternalAccountID = *req.ExternalAccountID
	}

	if req.Status != nil {
		if err := validateStatus(*req.Status); err != nil {
			return nil, err
		}
		account.Status = *req.Status
	}

	if req.Credentials != nil {
		account.Credentials = *req.Credentials
	}

	if err := s.store.Put(account); err != nil {
		return nil, errors.Wrap(ErrStoreOperation, err.Error())
	}

	log.L.WithField("account_key", key).Info("registry: account updated")

	return account.ToResponse(), nil
}

func (s *Service) DeleteAccount(key string) error {
	if key == "" {
		return ErrAccountKeyRequired
	}

	deleted, err := s.store.Delete(key)
	if err != nil {
		return errors.Wrap(ErrStoreOperation, err.Error())
	}

	if !deleted {
		return NewAccountErrorWithKey(ErrAccountNotFound, apiErrors.ErrAccountNotFound, key)
	}

	log.L.WithField("account_key", key).Info("registry: account deleted")

	return nil
}

// PersistExternalAccountID grava o ID externo detectado pelo integrador
func (s *Service) PersistExternalAccountID(key, externalAccountID string) error {
	account, err := s.GetAccount(key)
	if err != nil {
		return err
	}

	account.ExternalAccountID = externalAccountID

	if err := s.store.Put(account); err != nil {
		return errors.Wrap(ErrStoreOperation, err.Error())
	}

	return nil
}

func (s *Service) Backup() (*store.BackupInfo, error) {
	backup, err := s.store.Snapshot()
	if err != nil {
		return nil, errors.Wrap(ErrStoreOperation, err.Error())
	}

	log.L.WithField("backup_id", backup.ID).Info("registry: backup created")

	return backup, nil
}

func (s *Service) Restore(backupID string) error {
	if backupID == "" {
		return NewAccountError(ErrBackupNotFound, apiErrors.ErrMissingRequiredData, "backup ID is required")
	}

	if err := s.store.Restore(backupID); err != nil {
		return errors.Wrap(ErrBackupNotFound, err.Error())
	}

	log.L.WithField("backup_id", backupID).Info("registry: backup restored")

	return nil
}

func (s *Service) Stats() (*store.StoreStats, error) {
	stats, err := s.store.Stats()
	if err != nil {
		return nil, errors.Wrap(ErrStoreOperation, err.Error())
	}

	return stats, nil
}

func validateStatus(status domain.AccountStatus) error {
	if status != domain.AccountStatusActive && status != domain.AccountStatusInactive {
		return NewAccountError(ErrInvalidStatus, apiErrors.ErrInvalidRequest, string(status))
	}

	return nil
}
