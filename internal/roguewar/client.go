// Package roguewar is the HTTP client for the RogueWar service: the current
// star map, the static system constants and bot authentication.
package roguewar

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"roguewar-client/internal/cache"
	"roguewar-client/internal/config"
	apperr "roguewar-client/internal/errors"
	"roguewar-client/internal/galaxy"
	"roguewar-client/internal/logger"
)

const (
	endpointMap     = "getmap"
	endpointStatic  = "getsystemstatic"
	endpointAuth    = "botauth"
	starMapCacheKey = "kStarMap"
)

// maxErrorBody caps how much of a failed response ends up in an error message.
const maxErrorBody = 512

// Client is a rate-limited RogueWar HTTP client.
type Client struct {
	cfg     *config.Config
	base    string
	http    *http.Client
	limiter *rate.Limiter

	maps  *cache.Cache[*galaxy.StarMap]
	group singleflight.Group

	tokenMu sync.Mutex
	token   *oauth2.Token

	constMu   sync.Mutex
	constants *galaxy.StarMapConstants
}

// NewClient creates a client for cfg. A nil cfg means config.Default().
func NewClient(cfg *config.Config) *Client {
	if cfg == nil {
		cfg = config.Default()
	}
	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.RequestBurst)
	}
	return &Client{
		cfg:     cfg,
		base:    cfg.APIBase(),
		http:    &http.Client{Timeout: cfg.RequestTimeout, Transport: newTransport()},
		limiter: limiter,
		maps:    cache.New[*galaxy.StarMap](cfg.CacheCleanupInterval),
	}
}

func newTransport() *http.Transport {
	t := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          20,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: time.Second,
	}
	if err := http2.ConfigureTransport(t); err != nil {
		logger.Warn("API", "HTTP/2 not available: "+err.Error())
	}
	return t
}

// BaseURI returns the prefix every endpoint is appended to.
func (c *Client) BaseURI() string {
	return c.base
}

// GlobalData returns the server-wide constants.
func (c *Client) GlobalData() *galaxy.GlobalData {
	radius := c.cfg.SupportRadius
	if radius <= 0 {
		radius = galaxy.DefaultSupportRadius
	}
	return &galaxy.GlobalData{SupportRadius: radius}
}

// StarMap returns the current star map. Results are cached for
// cfg.MapCacheTTL and concurrent misses share one request.
func (c *Client) StarMap(ctx context.Context) (*galaxy.StarMap, error) {
	if m, ok := c.maps.Get(starMapCacheKey); ok {
		logger.Debug("Cache", fmt.Sprintf("star map HIT (%d systems)", len(m.Systems)))
		return m, nil
	}

	v, err, _ := c.group.Do(starMapCacheKey, func() (any, error) {
		if m, ok := c.maps.Get(starMapCacheKey); ok {
			return m, nil
		}
		body, err := c.do(ctx, http.MethodGet, endpointMap, nil, true)
		if err != nil {
			return nil, err
		}
		m := &galaxy.StarMap{}
		if err := m.UnmarshalJSON(body); err != nil {
			return nil, err
		}
		c.maps.Set(starMapCacheKey, m, c.cfg.MapCacheTTL)
		logger.Info("API", fmt.Sprintf("star map loaded: %d systems", len(m.Systems)))
		return m, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*galaxy.StarMap), nil
}

// InvalidateStarMap drops the cached star map.
func (c *Client) InvalidateStarMap() {
	c.maps.Delete(starMapCacheKey)
}

// SystemConstants returns the static system data with adjacency computed for
// the support radius. It is fetched once per client; force fetches it again.
// When a refresh fails the previously held constants are kept for later calls.
func (c *Client) SystemConstants(ctx context.Context, force bool) (*galaxy.StarMapConstants, error) {
	c.constMu.Lock()
	defer c.constMu.Unlock()

	if c.constants != nil && !force {
		return c.constants, nil
	}

	body, err := c.do(ctx, http.MethodGet, endpointStatic, nil, true)
	if err != nil {
		return nil, err
	}
	constants := &galaxy.StarMapConstants{}
	if err := constants.UnmarshalJSON(body); err != nil {
		return nil, err
	}

	start := time.Now()
	constants.MapAdjacents(c.GlobalData().SupportRadius)
	logger.Info("Adjacency", fmt.Sprintf("mapped %d systems in %.2f seconds",
		len(constants.Systems), time.Since(start).Seconds()))

	c.constants = constants
	return constants, nil
}

// do sends one request and returns the response body for a 2xx status.
// With reauth set, a 401 triggers one authentication and one retry.
func (c *Client) do(ctx context.Context, method, endpoint string, body []byte, reauth bool) ([]byte, error) {
	if reauth {
		if err := c.refreshExpired(ctx); err != nil {
			return nil, err
		}
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, apperr.WrapTransport(fmt.Sprintf("%s %s", method, endpoint), err)
	}

	url := c.base + endpoint
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return nil, apperr.WrapInternal("build request", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Content-Type", "application/json")
	if tok := c.currentToken(); tok != nil {
		tok.SetAuthHeader(req)
	}

	logger.Debug("API", fmt.Sprintf("%s %s", method, url))
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Error("API", fmt.Sprintf("request failed: %s %s: %v", method, endpoint, err))
		return nil, apperr.WrapTransport(fmt.Sprintf("%s %s", method, endpoint), err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.WrapTransport(fmt.Sprintf("read %s", endpoint), err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return data, nil
	case resp.StatusCode == http.StatusUnauthorized && reauth:
		logger.Info("API", fmt.Sprintf("%s returned 401, authenticating", endpoint))
		if err := c.Authenticate(ctx); err != nil {
			return nil, err
		}
		return c.do(ctx, method, endpoint, body, false)
	case resp.StatusCode == http.StatusUnauthorized:
		logger.Warn("API", fmt.Sprintf("request failed: %s %d", endpoint, resp.StatusCode))
		return nil, apperr.Unauthorized(fmt.Sprintf("%s: unauthorized", endpoint))
	default:
		logger.Warn("API", fmt.Sprintf("request failed: %s %d", endpoint, resp.StatusCode))
		if len(data) > maxErrorBody {
			data = data[:maxErrorBody]
		}
		return nil, apperr.HTTPStatusf(resp.StatusCode, "%s: status %d: %s", endpoint, resp.StatusCode, bytes.TrimSpace(data))
	}
}
