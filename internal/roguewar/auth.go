package roguewar

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	apperr "roguewar-client/internal/errors"
	"roguewar-client/internal/logger"
)

type authRequest struct {
	BotName   string `json:"botName"`
	BotSecret string `json:"botSecret"`
}

type authResponse struct {
	AccessToken string `json:"access_token"`
}

// Authenticate exchanges the bot credentials for an access token. Concurrent
// callers share one request. The auth call itself never retries on 401.
func (c *Client) Authenticate(ctx context.Context) error {
	_, err, _ := c.group.Do(endpointAuth, func() (any, error) {
		return nil, c.authenticate(ctx)
	})
	return err
}

func (c *Client) authenticate(ctx context.Context) error {
	if !c.cfg.HasCredentials() {
		return apperr.Unauthorized("no bot credentials configured")
	}
	payload, err := json.Marshal(authRequest{BotName: c.cfg.BotName, BotSecret: c.cfg.BotSecret})
	if err != nil {
		return apperr.WrapInternal("encode auth request", err)
	}

	body, err := c.do(ctx, http.MethodPost, endpointAuth, payload, false)
	if err != nil {
		// the held token was rejected or expired; stop sending it
		c.ClearToken()
		return apperr.WrapUnauthorized("authentication failed", err)
	}
	var resp authResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return apperr.WrapDecode("auth response", err)
	}
	if resp.AccessToken == "" {
		return apperr.Decodef("auth response: missing access_token")
	}

	tok := newToken(resp.AccessToken)
	c.tokenMu.Lock()
	c.token = tok
	c.tokenMu.Unlock()

	if tok.Expiry.IsZero() {
		logger.Success("Auth", "authenticated as "+c.cfg.BotName)
	} else {
		logger.Success("Auth", "authenticated as "+c.cfg.BotName+", token expires "+tok.Expiry.Format("15:04:05"))
	}
	return nil
}

// newToken wraps an access token. When it is a JWT carrying an exp claim the
// expiry is taken from it; the signature is the server's business.
func newToken(access string) *oauth2.Token {
	tok := &oauth2.Token{AccessToken: access, TokenType: "Bearer"}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(access, claims); err != nil {
		return tok
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		tok.Expiry = exp.Time
	}
	return tok
}

func (c *Client) currentToken() *oauth2.Token {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()
	return c.token
}

// refreshExpired authenticates ahead of a request when the held token has
// expired. Without a token nothing happens; the server's 401 drives the
// first authentication.
func (c *Client) refreshExpired(ctx context.Context) error {
	tok := c.currentToken()
	if tok == nil || tok.Valid() {
		return nil
	}
	logger.Info("Auth", "token expired, re-authenticating")
	return c.Authenticate(ctx)
}

// ClearToken forgets the held access token.
func (c *Client) ClearToken() {
	c.tokenMu.Lock()
	c.token = nil
	c.tokenMu.Unlock()
}
