package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/auctionhub/internal/client/models"
	"github.com/dmitrijs2005/auctionhub/internal/common"
	"github.com/dmitrijs2005/auctionhub/internal/logging"
	"github.com/google/uuid"
)

const maxBodySize = 4 << 20

type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger

	refreshMu sync.Mutex
}

// NewHTTPClient validates baseURL and returns a client whose requests time
// out after timeout. tokens may be nil for anonymous use.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api url %q: scheme must be http or https", baseURL)
	}
	if log == nil {
		log = logging.Nop()
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}, nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) token() string {
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	return c.call(ctx, method, path, query, in, out, false)
}

// call performs one logical call. A 401 on a call that carried a token
// triggers a single refresh and retry with the same request id. When
// idempotent is set the request id is also sent as the idempotency key.
func (c *HTTPClient) call(ctx context.Context, method, path string, query url.Values, in, out any, idempotent bool) error {
	var body []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = b
	}

	requestID := uuid.NewString()
	token := c.token()

	err := c.send(ctx, method, path, query, body, token, requestID, idempotent, out)
	if !errors.Is(err, common.ErrUnauthorized) || token == "" || strings.HasPrefix(path, "/auth/") {
		return err
	}

	if rerr := c.refresh(ctx, token); rerr != nil {
		c.log.Warn(ctx, "token refresh failed", "request_id", requestID, "error", rerr)
		return err
	}

	return c.send(ctx, method, path, query, body, c.token(), requestID, idempotent, out)
}

// refresh exchanges stale for a new token unless another caller already did.
func (c *HTTPClient) refresh(ctx context.Context, stale string) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	if c.token() != stale {
		return nil
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := c.send(ctx, http.MethodPost, "/auth/refresh", nil, nil, stale, uuid.NewString(), false, &resp); err != nil {
		return err
	}
	if resp.Token == "" {
		return ErrBadResponse
	}

	// TOKENS REFRESHED, later calls pick up the new one
	return c.tokens.SetToken(ctx, resp.Token)
}

func (c *HTTPClient) send(ctx context.Context, method, path string, query url.Values, body []byte, token, requestID string, idempotent bool, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, r)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if idempotent {
		req.Header.Set(common.IdempotencyKeyHeaderName, requestID)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "api call failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return mapError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return mapError(err)
	}

	c.log.Debug(ctx, "api call", "method", method, "path", path, "status", resp.StatusCode,
		"request_id", requestID, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapStatus(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return nil
}

func get[T any](ctx context.Context, c *HTTPClient, path string, query url.Values) (T, error) {
	var out T
	err := c.do(ctx, http.MethodGet, path, query, nil, &out)
	return out, err
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	resp, err := get[struct {
		Status string `json:"status"`
	}](ctx, c, "/health", nil)
	if err != nil {
		return err
	}
	if resp.Status != "" && !strings.EqualFold(resp.Status, "OK") {
		return common.ErrUnavailable
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &out)
	return out, err
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &out)
	return out, err
}

// Refresh asks for a new token for the current one without storing it.
func (c *HTTPClient) Refresh(ctx context.Context) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/refresh", nil, nil, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *HTTPClient) ListAuctions(ctx context.Context, query url.Values) ([]models.Auction, error) {
	return get[[]models.Auction](ctx, c, "/auctions", query)
}

func (c *HTTPClient) GetAuction(ctx context.Context, auctionID int64) (models.Auction, error) {
	return get[models.Auction](ctx, c, "/auctions/"+id(auctionID), nil)
}

func (c *HTTPClient) MyAuctions(ctx context.Context) ([]models.Auction, error) {
	return get[[]models.Auction](ctx, c, "/auctions/my-auctions", nil)
}

func (c *HTTPClient) WatchedAuctions(ctx context.Context) ([]models.Auction, error) {
	return get[[]models.Auction](ctx, c, "/auctions/watched", nil)
}

func (c *HTTPClient) FeaturedAuctions(ctx context.Context) ([]models.Auction, error) {
	return get[[]models.Auction](ctx, c, "/auctions/featured", nil)
}

func (c *HTTPClient) EndingSoonAuctions(ctx context.Context) ([]models.Auction, error) {
	return get[[]models.Auction](ctx, c, "/auctions/ending-soon", nil)
}

func (c *HTTPClient) PopularAuctions(ctx context.Context) ([]models.Auction, error) {
	return get[[]models.Auction](ctx, c, "/auctions/popular", nil)
}

func (c *HTTPClient) WatchAuction(ctx context.Context, auctionID int64) error {
	return c.do(ctx, http.MethodPost, "/auctions/"+id(auctionID)+"/watch", nil, nil, nil)
}

func (c *HTTPClient) UnwatchAuction(ctx context.Context, auctionID int64) error {
	return c.do(ctx, http.MethodDelete, "/auctions/"+id(auctionID)+"/watch", nil, nil, nil)
}

func (c *HTTPClient) PlaceBid(ctx context.Context, req models.PlaceBidRequest) (models.Bid, error) {
	var out models.Bid
	err := c.call(ctx, http.MethodPost, "/auctions/"+id(req.AuctionID)+"/bids", nil, req, &out, true)
	return out, err
}

func (c *HTTPClient) AuctionBids(ctx context.Context, auctionID int64) ([]models.Bid, error) {
	return get[[]models.Bid](ctx, c, "/auctions/"+id(auctionID)+"/bids", nil)
}

func (c *HTTPClient) ListProducts(ctx context.Context, query url.Values) ([]models.Product, error) {
	return get[[]models.Product](ctx, c, "/products", query)
}

func (c *HTTPClient) GetProduct(ctx context.Context, productID int64) (models.Product, error) {
	return get[models.Product](ctx, c, "/products/"+id(productID), nil)
}

func (c *HTTPClient) MyProducts(ctx context.Context) ([]models.Product, error) {
	return get[[]models.Product](ctx, c, "/products/my-products", nil)
}

func (c *HTTPClient) FeaturedProducts(ctx context.Context) ([]models.Product, error) {
	return get[[]models.Product](ctx, c, "/products/featured", nil)
}

func (c *HTTPClient) NewArrivals(ctx context.Context) ([]models.Product, error) {
	return get[[]models.Product](ctx, c, "/products/new-arrivals", nil)
}

func (c *HTTPClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	return get[[]models.Category](ctx, c, "/categories", nil)
}

func (c *HTTPClient) GetCategory(ctx context.Context, categoryID int64) (models.Category, error) {
	return get[models.Category](ctx, c, "/categories/"+id(categoryID), nil)
}

func (c *HTTPClient) MainCategories(ctx context.Context) ([]models.Category, error) {
	return get[[]models.Category](ctx, c, "/categories/main", nil)
}

func (c *HTTPClient) Subcategories(ctx context.Context, parentID int64) ([]models.Category, error) {
	return get[[]models.Category](ctx, c, "/categories/"+id(parentID)+"/subcategories", nil)
}

func (c *HTTPClient) PopularCategories(ctx context.Context) ([]models.Category, error) {
	return get[[]models.Category](ctx, c, "/categories/popular", nil)
}

func (c *HTTPClient) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	return get[models.DashboardStats](ctx, c, "/users/me/stats", nil)
}

func (c *HTTPClient) SellerStats(ctx context.Context) (models.SellerStats, error) {
	return get[models.SellerStats](ctx, c, "/users/me/seller-stats", nil)
}
