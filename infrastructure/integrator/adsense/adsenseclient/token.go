package adsenseclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Myudi422/backend-adsense/internal/config"
	"github.com/Myudi422/backend-adsense/internal/domain"
)

// Renovar o token um pouco antes de expirar evita usar um token
// que vence no meio da requisição
const tokenExpiryMargin = 60 * time.Second

type cachedToken struct {
	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
}

// TokenManager mantém um access token por conta, renovando via
// refresh token quando necessário
type TokenManager struct {
	cfg        *config.Config
	httpClient *http.Client

	mu     sync.Mutex
	tokens map[string]*cachedToken
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.AdSense.RequestTimeout) * time.Second,
		},
		tokens: make(map[string]*cachedToken),
	}
}

// Source retorna um TokenSource vinculado às credenciais da conta
func (tm *TokenManager) Source(account *domain.Account) domain.TokenSource {
	return &accountTokenSource{manager: tm, account: account}
}

type accountTokenSource struct {
	manager *TokenManager
	account *domain.Account
}

func (s *accountTokenSource) AccessToken(ctx context.Context) (string, error) {
	return s.manager.accessToken(ctx, s.account)
}

func (tm *TokenManager) accessToken(ctx context.Context, account *domain.Account) (string, error) {
	if account.Credentials.IsZero() {
		return "", errors.Errorf("conta %s não possui credenciais configuradas", account.Key)
	}

	tm.mu.Lock()
	token, ok := tm.tokens[account.Key]
	if !ok {
		token = &cachedToken{}
		tm.tokens[account.Key] = token
	}
	tm.mu.Unlock()

	token.mu.Lock()
	defer token.mu.Unlock()

	if token.accessToken != "" && time.Now().Before(token.expiresAt.Add(-tokenExpiryMargin)) {
		return token.accessToken, nil
	}

	accessToken, expiresIn, err := tm.refresh(ctx, account.Credentials)
	if err != nil {
		return "", errors.Wrapf(err, "erro ao renovar token da conta %s", account.Key)
	}

	token.accessToken = accessToken
	token.expiresAt = time.Now().Add(time.Duration(expiresIn) * time.Second)

	logrus.WithField("account_key", account.Key).Debug("Token de acesso renovado")

	return token.accessToken, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

func (tm *TokenManager) refresh(ctx context.Context, creds domain.Credentials) (string, int, error) {
	form := url.Values{}
	form.Set("client_id", creds.ClientID)
	form.Set("client_secret", creds.ClientSecret)
	form.Set("refresh_token", creds.RefreshToken)
	form.Set("grant_type", "refresh_token")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tm.cfg.AdSense.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := tm.httpClient.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, err
	}

	if resp.StatusCode != http.StatusOK {
		return "", 0, errors.Errorf("servidor de tokens retornou %d: %s", resp.StatusCode, string(body))
	}

	tr := &tokenResponse{}
	if err := json.Unmarshal(body, tr); err != nil {
		return "", 0, err
	}

	if tr.AccessToken == "" {
		return "", 0, errors.New("resposta do servidor de tokens sem access_token")
	}

	return tr.AccessToken, tr.ExpiresIn, nil
}

// Invalidate descarta o token em cache da conta, forçando um refresh
// na próxima chamada
func (tm *TokenManager) Invalidate(accountKey string) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	delete(tm.tokens, accountKey)
}
