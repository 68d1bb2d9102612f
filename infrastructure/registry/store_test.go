package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Myudi422/backend-adsense/internal/config"
	"github.com/Myudi422/backend-adsense/internal/domain"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()

	dir := t.TempDir()
	store, err := NewFileStore(config.Registry{
		FilePath:  filepath.Join(dir, "accounts.json"),
		BackupDir: filepath.Join(dir, "backups"),
	})
	require.NoError(t, err)

	return store
}

func testAccount(key string, status domain.AccountStatus) *domain.Account {
	return &domain.Account{
		Key:         key,
		DisplayName: "Conta " + key,
		Status:      status,
		Credentials: domain.Credentials{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			RefreshToken: "refresh-token",
		},
	}
}

func TestFileStore_PutGetDelete(t *testing.T) {
	store := newTestStore(t)

	// Chave inexistente retorna nil sem erro
	account, err := store.Get("acc1")
	require.NoError(t, err)
	assert.Nil(t, account)

	require.NoError(t, store.Put(testAccount("acc1", domain.AccountStatusActive)))

	account, err = store.Get("acc1")
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, "Conta acc1", account.DisplayName)
	assert.False(t, account.CreatedAt.IsZero())
	assert.False(t, account.UpdatedAt.IsZero())

	deleted, err := store.Delete("acc1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.Delete("acc1")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestFileStore_PutPreservesCreatedAt(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Put(testAccount("acc1", domain.AccountStatusActive)))

	first, err := store.Get("acc1")
	require.NoError(t, err)

	updated := testAccount("acc1", domain.AccountStatusInactive)
	require.NoError(t, store.Put(updated))

	second, err := store.Get("acc1")
	require.NoError(t, err)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, domain.AccountStatusInactive, second.Status)
}

func TestFileStore_ListOrderedByKey(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Put(testAccount("zeta", domain.AccountStatusActive)))
	require.NoError(t, store.Put(testAccount("alpha", domain.AccountStatusActive)))
	require.NoError(t, store.Put(testAccount("mid", domain.AccountStatusInactive)))

	accounts, err := store.List()
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.Equal(t, "alpha", accounts[0].Key)
	assert.Equal(t, "mid", accounts[1].Key)
	assert.Equal(t, "zeta", accounts[2].Key)
}

func TestFileStore_ReloadFromDisk(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Registry{
		FilePath:  filepath.Join(dir, "accounts.json"),
		BackupDir: filepath.Join(dir, "backups"),
	}

	store, err := NewFileStore(cfg)
	require.NoError(t, err)
	require.NoError(t, store.Put(testAccount("acc1", domain.AccountStatusActive)))

	// Um novo store sobre o mesmo arquivo enxerga os dados gravados
	reloaded, err := NewFileStore(cfg)
	require.NoError(t, err)

	account, err := reloaded.Get("acc1")
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, "Conta acc1", account.DisplayName)
}

func TestFileStore_SnapshotAndRestore(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Put(testAccount("acc1", domain.AccountStatusActive)))

	backup, err := store.Snapshot()
	require.NoError(t, err)
	assert.NotEmpty(t, backup.ID)
	assert.Greater(t, backup.SizeBytes, int64(0))

	// Remove a conta e restaura o backup
	_, err = store.Delete("acc1")
	require.NoError(t, err)

	require.NoError(t, store.Restore(backup.ID))

	account, err := store.Get("acc1")
	require.NoError(t, err)
	require.NotNil(t, account)

	// Backup inexistente retorna erro
	err = store.Restore("nao-existe")
	assert.Error(t, err)
}

func TestFileStore_Stats(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Put(testAccount("acc1", domain.AccountStatusActive)))
	require.NoError(t, store.Put(testAccount("acc2", domain.AccountStatusInactive)))

	_, err := store.Snapshot()
	require.NoError(t, err)

	stats, err := store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalAccounts)
	assert.Equal(t, 1, stats.ActiveAccounts)
	assert.Equal(t, 1, stats.BackupCount)
	assert.Greater(t, stats.FileSizeBytes, int64(0))

	// O arquivo gravado não expõe segredos fora do bloco de credenciais
	data, err := os.ReadFile(stats.FilePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "refresh_token")
}

func TestFileStore_KeepsPreviousVersionOnWrite(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Put(testAccount("acc1", domain.AccountStatusActive)))
	require.NoError(t, store.Put(testAccount("acc2", domain.AccountStatusActive)))

	// O .bak guarda o estado anterior à última gravação
	data, err := os.ReadFile(store.path + ".bak")
	require.NoError(t, err)
	assert.Contains(t, string(data), "acc1")
	assert.NotContains(t, string(data), "acc2")
}
