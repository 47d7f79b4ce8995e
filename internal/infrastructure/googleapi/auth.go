package googleapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"oficina_facil/internal/usecase/interfaces"
)

const tokenStoreKey = "oficinafacil_google_token"

var ErrNotSignedIn = errors.New("not signed in")

// Scopes: spreadsheet read/write plus basic profile for the account badge.
var oauthScopes = []string{
	"https://www.googleapis.com/auth/spreadsheets",
	"https://www.googleapis.com/auth/drive.file",
	"https://www.googleapis.com/auth/userinfo.profile",
	"https://www.googleapis.com/auth/userinfo.email",
}

const userinfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

// AuthService runs the OAuth consent flow and keeps the resulting token in
// the local store so a restart does not force a new sign-in.
type AuthService struct {
	cfg   *oauth2.Config
	store interfaces.ILocalStore

	mu    sync.Mutex
	token *oauth2.Token
}

var _ interfaces.IAuthService = (*AuthService)(nil)

func NewAuthService(clientID, clientSecret, redirectURL string, store interfaces.ILocalStore) *AuthService {
	s := &AuthService{
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       oauthScopes,
			Endpoint:     google.Endpoint,
		},
		store: store,
	}
	s.restore()
	return s
}

// restore loads a previously persisted token, if any.
func (s *AuthService) restore() {
	if s.store == nil {
		return
	}
	b, ok := s.store.Get(tokenStoreKey)
	if !ok {
		return
	}
	var tok oauth2.Token
	if err := json.Unmarshal(b, &tok); err != nil {
		log.Printf("[auth] persisted token corrupted; discarding err=%v", err)
		_ = s.store.Delete(tokenStoreKey)
		return
	}
	s.token = &tok
	log.Printf("[auth] session restored expires=%v", tok.Expiry)
}

func (s *AuthService) SignedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	// A token with a refresh token stays usable after expiry.
	return s.token != nil && (s.token.Valid() || s.token.RefreshToken != "")
}

func (s *AuthService) AuthURL(state string) string {
	return s.cfg.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

func (s *AuthService) Exchange(ctx context.Context, code string) error {
	tok, err := s.cfg.Exchange(ctx, code)
	if err != nil {
		log.Printf("[auth] code exchange failed err=%v", err)
		return err
	}

	s.mu.Lock()
	s.token = tok
	s.mu.Unlock()

	s.persist(tok)
	log.Printf("[auth] signed in expires=%v", tok.Expiry)
	return nil
}

func (s *AuthService) SignOut() error {
	s.mu.Lock()
	s.token = nil
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.Delete(tokenStoreKey); err != nil {
			log.Printf("[auth] token delete failed err=%v", err)
			return err
		}
	}
	log.Printf("[auth] signed out")
	return nil
}

func (s *AuthService) Profile(ctx context.Context) (interfaces.Profile, error) {
	if !s.SignedIn() {
		return interfaces.Profile{}, ErrNotSignedIn
	}
	client := s.Client(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userinfoEndpoint, nil)
	if err != nil {
		return interfaces.Profile{}, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return interfaces.Profile{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("[auth] userinfo request failed status=%d", resp.StatusCode)
		return interfaces.Profile{}, ErrNotSignedIn
	}

	var body struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return interfaces.Profile{}, err
	}
	return interfaces.Profile{ID: body.ID, Name: body.Name, Email: body.Email, ImageURL: body.Picture}, nil
}

// Client returns an HTTP client that injects and auto-refreshes the stored
// token. The token is resolved per request, so the same client picks up a
// sign-in that happens later; requests while signed out fail with
// ErrNotSignedIn. Refreshed tokens are persisted back.
func (s *AuthService) Client(ctx context.Context) *http.Client {
	return oauth2.NewClient(ctx, &persistingSource{svc: s, ctx: ctx})
}

func (s *AuthService) persist(tok *oauth2.Token) {
	if s.store == nil {
		return
	}
	b, err := json.Marshal(tok)
	if err != nil {
		log.Printf("[auth] token marshal failed err=%v", err)
		return
	}
	if err := s.store.Put(tokenStoreKey, b); err != nil {
		log.Printf("[auth] token persist failed err=%v", err)
	}
}

// persistingSource resolves the current token at request time and writes
// refreshed tokens through to the local store.
type persistingSource struct {
	svc *AuthService
	ctx context.Context
}

func (p *persistingSource) Token() (*oauth2.Token, error) {
	p.svc.mu.Lock()
	current := p.svc.token
	p.svc.mu.Unlock()
	if current == nil {
		return nil, ErrNotSignedIn
	}

	tok, err := p.svc.cfg.TokenSource(p.ctx, current).Token()
	if err != nil {
		return nil, err
	}

	p.svc.mu.Lock()
	changed := p.svc.token == nil || p.svc.token.AccessToken != tok.AccessToken
	p.svc.token = tok
	p.svc.mu.Unlock()

	if changed {
		p.svc.persist(tok)
	}
	return tok, nil
}
