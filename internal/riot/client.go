package riot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"riftmates/internal/config"
	"riftmates/internal/constants"
	"riftmates/internal/domain"

	"github.com/cenkalti/backoff/v4"
	"github.com/valyala/fasthttp"
)

type Client struct {
	apiKey            string
	baseURL           string
	client            *fasthttp.Client
	historyBatchDelay time.Duration
	rateLimitBackoff  time.Duration

	rateLimitMu sync.RWMutex
	rateLimit   RateLimitInfo
}

// RateLimitInfo mirrors the upstream's most recent rate-limit headers. The
// limit/count values are kept in the upstream's raw "calls:window" form.
type RateLimitInfo struct {
	AppLimit string `json:"app_limit"`
	AppCount string `json:"app_count"`

	// seconds, from the last 429
	RetryAfter int `json:"retry_after"`

	UpdatedAt time.Time `json:"updated_at"`
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiKey:  cfg.RiotAPIKey,
		baseURL: cfg.RiotBaseURL,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		historyBatchDelay: cfg.HistoryBatchDelay,
		rateLimitBackoff:  cfg.RateLimitBackoff,
		rateLimit: RateLimitInfo{
			UpdatedAt: time.Now(),
		},
	}
}

func (c *Client) GetRateLimitInfo() RateLimitInfo {
	c.rateLimitMu.RLock()
	defer c.rateLimitMu.RUnlock()
	return c.rateLimit
}

func (c *Client) updateRateLimit(resp *fasthttp.Response) {
	c.rateLimitMu.Lock()
	defer c.rateLimitMu.Unlock()

	if limit := string(resp.Header.Peek("X-App-Rate-Limit")); limit != "" {
		c.rateLimit.AppLimit = limit
	}
	if count := string(resp.Header.Peek("X-App-Rate-Limit-Count")); count != "" {
		c.rateLimit.AppCount = count
	}
	if retryAfter := string(resp.Header.Peek("Retry-After")); retryAfter != "" {
		if val, err := strconv.Atoi(retryAfter); err == nil {
			c.rateLimit.RetryAfter = val
		}
	}
	c.rateLimit.UpdatedAt = time.Now()
}

// clusterURL picks the upstream host for a region. A configured base URL
// overrides cluster routing so the whole client can be pointed at a proxy.
func (c *Client) clusterURL(region string) string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return fmt.Sprintf("https://%s.api.riotgames.com", Cluster(region))
}

// ResolveAccount turns a gameName/tagLine pair into the upstream account
// record. Non-success responses fail immediately; there is no retry here.
func (c *Client) ResolveAccount(ctx context.Context, gameName, tagLine, region string) (*Account, error) {
	u := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		c.clusterURL(region), url.PathEscape(gameName), url.PathEscape(tagLine))
	return doRequest[Account](ctx, c, "resolve account", u)
}

// FetchMatchHistory returns up to maxCount recent match IDs for a player,
// newest first. Pages are requested in fixed-size batches; the fetch stops
// on an empty batch, a short batch, or when the cap is reached. Pages are
// spaced by a small delay so a deep history doesn't burn the rate budget.
func (c *Client) FetchMatchHistory(ctx context.Context, puuid, region string, mode domain.Mode, maxCount int) ([]string, error) {
	ids := make([]string, 0, maxCount)

	for offset := 0; offset < maxCount; {
		count := constants.MatchHistoryBatchSize
		if remaining := maxCount - offset; remaining < count {
			count = remaining
		}

		batch, err := c.fetchHistoryPage(ctx, puuid, region, mode, offset, count)
		if err != nil {
			return nil, err
		}

		ids = append(ids, batch...)
		if len(batch) < count {
			break
		}
		offset += len(batch)

		if offset < maxCount {
			select {
			case <-time.After(c.historyBatchDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	return ids, nil
}

// fetchHistoryPage requests one page of match IDs. A 429 re-requests the
// same page after the backoff delay, without advancing the offset and
// without a retry cap: throttling is expected and always recoverable. Any
// other failure is final.
func (c *Client) fetchHistoryPage(ctx context.Context, puuid, region string, mode domain.Mode, offset, count int) ([]string, error) {
	u := fmt.Sprintf("%s%s?start=%d&count=%d", c.clusterURL(region), historyPath(mode, puuid), offset, count)

	retry := backoff.NewConstantBackOff(c.rateLimitBackoff)
	for {
		page, err := doRequest[[]string](ctx, c, "fetch match history", u)
		if err == nil {
			return *page, nil
		}

		var ue *domain.UpstreamError
		if !errors.As(err, &ue) || !ue.RateLimited() {
			return nil, err
		}

		select {
		case <-time.After(retry.NextBackOff()):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// FetchMatchDetail returns the full record for one match. Single call, no
// retry; pacing between detail fetches is the caller's concern.
func (c *Client) FetchMatchDetail(ctx context.Context, matchID, region string, mode domain.Mode) (*MatchDetail, error) {
	u := c.clusterURL(region) + detailPath(mode, matchID)
	return doRequest[MatchDetail](ctx, c, "fetch match detail", u)
}

func historyPath(mode domain.Mode, puuid string) string {
	if mode == domain.ModeAutoBattler {
		return fmt.Sprintf("/tft/match/v1/matches/by-puuid/%s/ids", url.PathEscape(puuid))
	}
	return fmt.Sprintf("/lol/match/v5/matches/by-puuid/%s/ids", url.PathEscape(puuid))
}

func detailPath(mode domain.Mode, matchID string) string {
	if mode == domain.ModeAutoBattler {
		return fmt.Sprintf("/tft/match/v1/matches/%s", url.PathEscape(matchID))
	}
	return fmt.Sprintf("/lol/match/v5/matches/%s", url.PathEscape(matchID))
}

func doRequest[T any](ctx context.Context, client *Client, op, url string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("X-Riot-Token", client.apiKey)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	client.updateRateLimit(resp)

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, &domain.UpstreamError{
			Op:         op,
			StatusCode: resp.StatusCode(),
			Message:    upstreamMessage(resp.Body()),
		}
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}
	return &result, nil
}

// upstreamMessage pulls the human-readable message out of the upstream's
// error envelope, when there is one.
func upstreamMessage(body []byte) string {
	var payload struct {
		Status struct {
			Message string `json:"message"`
		} `json:"status"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		return payload.Status.Message
	}
	return ""
}
