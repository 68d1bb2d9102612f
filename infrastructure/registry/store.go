package registry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/Myudi422/backend-adsense/internal/config"
	"github.com/Myudi422/backend-adsense/internal/domain"
	"github.com/Myudi422/backend-adsense/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store é o repositório de contas persistido em arquivo JSON
type Store interface {
	Get(key string) (*domain.Account, error)
	Put(account *domain.Account) error
	Delete(key string) (bool, error)
	List() ([]*domain.Account, error)
	Snapshot() (*BackupInfo, error)
	Restore(backupID string) error
	Stats() (*StoreStats, error)
}

// metadata guarda informações de controle do arquivo de contas
type metadata struct {
	Version   string    `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

type fileDocument struct {
	Metadata metadata                   `json:"metadata"`
	Accounts map[string]*domain.Account `json:"accounts"`
}

// BackupInfo descreve um backup criado do arquivo de contas
type BackupInfo struct {
	ID        string    `json:"id"`
	FileName  string    `json:"file_name"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}

// StoreStats resume o estado atual do arquivo de contas
type StoreStats struct {
	TotalAccounts   int       `json:"total_accounts"`
	ActiveAccounts  int       `json:"active_accounts"`
	FileSizeBytes   int64     `json:"file_size_bytes"`
	BackupCount     int       `json:"backup_count"`
	UpdatedAt       time.Time `json:"updated_at"`
	FilePath        string    `json:"file_path"`
	BackupDirectory string    `json:"backup_directory"`
}

// FileStore implementa Store sobre um único arquivo JSON.
// Toda escrita passa por um arquivo temporário seguido de rename,
// então uma falha no meio da gravação nunca corrompe o arquivo atual.
type FileStore struct {
	mu        sync.RWMutex
	path      string
	backupDir string
	doc       *fileDocument
}

func NewFileStore(cfg config.Registry) (*FileStore, error) {
	s := &FileStore{
		path:      cfg.FilePath,
		backupDir: cfg.BackupDir,
	}

	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "erro ao criar diretório de backups")
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *FileStore) load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.doc = &fileDocument{
			Metadata: metadata{Version: "1", UpdatedAt: time.Now().UTC()},
			Accounts: make(map[string]*domain.Account),
		}

		return s.persist()
	}

	if err != nil {
		return errors.Wrap(err, "erro ao ler arquivo de contas")
	}

	doc := &fileDocument{}
	if err := json.Unmarshal(data, doc); err != nil {
		return errors.Wrap(err, "arquivo de contas inválido")
	}

	if doc.Accounts == nil {
		doc.Accounts = make(map[string]*domain.Account)
	}

	s.doc = doc

	return nil
}

// persist preserva a versão atual em um .bak e então grava o documento
// em um arquivo temporário renomeado por cima do atual. Chamar somente
// com o lock de escrita em mãos.
func (s *FileStore) persist() error {
	s.doc.Metadata.UpdatedAt = time.Now().UTC()

	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "erro ao serializar arquivo de contas")
	}

	if _, err := os.Stat(s.path); err == nil {
		if _, err := copyFile(s.path, s.path+".bak"); err != nil {
			return errors.Wrap(err, "erro ao preservar a versão anterior do arquivo de contas")
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrap(err, "erro ao gravar arquivo temporário")
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "erro ao substituir arquivo de contas")
	}

	return nil
}

// Get retorna a conta pela chave, ou nil quando não existe
func (s *FileStore) Get(key string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.doc.Accounts[key]
	if !ok {
		return nil, nil
	}

	cp := *account

	return &cp, nil
}

// Put insere ou substitui a conta pela chave
func (s *FileStore) Put(account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if existing, ok := s.doc.Accounts[account.Key]; ok {
		account.CreatedAt = existing.CreatedAt
	} else if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	account.UpdatedAt = now

	cp := *account
	s.doc.Accounts[account.Key] = &cp

	return s.persist()
}

// Delete remove a conta pela chave. Retorna false quando a chave não existe.
func (s *FileStore) Delete(key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.doc.Accounts[key]; !ok {
		return false, nil
	}

	delete(s.doc.Accounts, key)

	if err := s.persist(); err != nil {
		return false, err
	}

	return true, nil
}

// List retorna todas as contas ordenadas pela chave
func (s *FileStore) List() ([]*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]*domain.Account, 0, len(s.doc.Accounts))
	for _, account := range s.doc.Accounts {
		cp := *account
		accounts = append(accounts, &cp)
	}

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Key < accounts[j].Key
	})

	return accounts, nil
}

// Snapshot copia o arquivo atual para o diretório de backups
func (s *FileStore) Snapshot() (*BackupInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o ID do backup")
	}

	createdAt := time.Now().UTC()
	fileName := fmt.Sprintf("accounts-%s-%s.json", createdAt.Format("20060102T150405"), id)
	backupPath := filepath.Join(s.backupDir, fileName)

	size, err := copyFile(s.path, backupPath)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao copiar arquivo para backup")
	}

	return &BackupInfo{
		ID:        id,
		FileName:  fileName,
		SizeBytes: size,
		CreatedAt: createdAt,
	}, nil
}

// Restore substitui o arquivo atual pelo backup indicado
func (s *FileStore) Restore(backupID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	backupPath, err := s.findBackup(backupID)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(backupPath)
	if err != nil {
		return errors.Wrap(err, "erro ao ler arquivo de backup")
	}

	doc := &fileDocument{}
	if err := json.Unmarshal(data, doc); err != nil {
		return errors.Wrap(err, "arquivo de backup inválido")
	}

	if doc.Accounts == nil {
		doc.Accounts = make(map[string]*domain.Account)
	}

	s.doc = doc

	return s.persist()
}

func (s *FileStore) findBackup(backupID string) (string, error) {
	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		return "", errors.Wrap(err, "erro ao listar diretório de backups")
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasSuffix(name, fmt.Sprintf("-%s.json", backupID)) {
			return filepath.Join(s.backupDir, name), nil
		}
	}

	return "", errors.Errorf("backup não encontrado: %s", backupID)
}

// Stats retorna o estado atual do arquivo de contas e dos backups
func (s *FileStore) Stats() (*StoreStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &StoreStats{
		TotalAccounts:   len(s.doc.Accounts),
		UpdatedAt:       s.doc.Metadata.UpdatedAt,
		FilePath:        s.path,
		BackupDirectory: s.backupDir,
	}

	for _, account := range s.doc.Accounts {
		if account.IsActive() {
			stats.ActiveAccounts++
		}
	}

	if info, err := os.Stat(s.path); err == nil {
		stats.FileSizeBytes = info.Size()
	}

	entries, err := os.ReadDir(s.backupDir)
	if err == nil {
		for _, entry := range entries {
			if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
				stats.BackupCount++
			}
		}
	}

	return stats, nil
}

func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}
	defer out.Close()

	size, err := io.Copy(out, in)
	if err != nil {
		return 0, err
	}

	return size, out.Sync()
}
