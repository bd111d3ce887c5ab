package lark

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"go-joblookup/internal/listing"
)

const (
	defaultBaseURL = "https://open.larksuite.com"
	pageSize       = "100"

	// renew the tenant token a bit before Lark expires it
	tokenSafetyMargin = 5 * time.Minute
)

// Client fetches the job-listing catalog from a Lark Bitable table. It is the
// Listing Store collaborator: the match engine never talks to it directly and
// only ever sees the flattened snapshot it returns.
type Client struct {
	appID     string
	appSecret string
	baseID    string
	tableID   string

	// BaseURL can be overridden in tests
	BaseURL    string
	httpClient *http.Client

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewClient(appID, appSecret, baseID, tableID string) *Client {
	return &Client{
		appID:      appID,
		appSecret:  appSecret,
		baseID:     baseID,
		tableID:    tableID,
		BaseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type tokenResponse struct {
	Code              int    `json:"code"`
	Msg               string `json:"msg"`
	TenantAccessToken string `json:"tenant_access_token"`
	Expire            int    `json:"expire"`
}

// tenantToken returns a cached tenant access token, fetching a fresh one when
// the cached token is missing or close to expiry.
func (c *Client) tenantToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry.Add(-tokenSafetyMargin)) {
		return c.token, nil
	}

	body, err := json.Marshal(map[string]string{
		"app_id":     c.appID,
		"app_secret": c.appSecret,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST",
		c.BaseURL+"/open-apis/auth/v3/tenant_access_token/internal", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var tr tokenResponse
	if err := json.Unmarshal(bodyBytes, &tr); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if tr.TenantAccessToken == "" {
		return "", fmt.Errorf("cannot get tenant access token: %s", tr.Msg)
	}

	c.token = tr.TenantAccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tr.Expire) * time.Second)
	return c.token, nil
}

type record struct {
	RecordID string         `json:"record_id"`
	Fields   map[string]any `json:"fields"`
}

type recordsResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		Items     []record `json:"items"`
		PageToken string   `json:"page_token"`
		HasMore   bool     `json:"has_more"`
	} `json:"data"`
}

// FetchCatalog walks the Bitable pagination and returns the full flattened
// catalog snapshot.
func (c *Client) FetchCatalog(ctx context.Context) ([]listing.JobListing, error) {
	token, err := c.tenantToken(ctx)
	if err != nil {
		return nil, err
	}

	var catalog []listing.JobListing
	pageToken := ""
	for {
		page, next, err := c.fetchPage(ctx, token, pageToken)
		if err != nil {
			return nil, err
		}
		catalog = append(catalog, page...)
		if next == "" {
			break
		}
		pageToken = next
	}
	return catalog, nil
}

func (c *Client) fetchPage(ctx context.Context, token, pageToken string) ([]listing.JobListing, string, error) {
	u := fmt.Sprintf("%s/open-apis/bitable/v1/apps/%s/tables/%s/records", c.BaseURL, c.baseID, c.tableID)
	params := url.Values{}
	params.Set("page_size", pageSize)
	if pageToken != "" {
		params.Set("page_token", pageToken)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", u+"?"+params.Encode(), nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create records request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("records request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read records response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("records endpoint returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var rr recordsResponse
	if err := json.Unmarshal(bodyBytes, &rr); err != nil {
		return nil, "", fmt.Errorf("failed to decode records response: %w", err)
	}
	if rr.Code != 0 {
		return nil, "", fmt.Errorf("bitable error %d: %s", rr.Code, rr.Msg)
	}

	items := make([]listing.JobListing, 0, len(rr.Data.Items))
	for _, r := range rr.Data.Items {
		items = append(items, toListing(r))
	}

	next := ""
	if rr.Data.HasMore {
		next = rr.Data.PageToken
	}
	return items, next, nil
}

// toListing maps the Vietnamese Bitable column names onto a JobListing.
func toListing(r record) listing.JobListing {
	f := r.Fields
	return listing.JobListing{
		RecordID:    r.RecordID,
		Company:     fieldString(f["Công ty"]),
		Title:       fieldString(f["Công việc"]),
		Address:     fieldString(f["Địa chỉ"]),
		City:        fieldString(f["Thành phố"]),
		District:    fieldString(f["Quận"]),
		JobGroup:    fieldString(f["Nhóm việc"]),
		WorkingTime: fieldString(f["Thời gian làm việc"]),
		SalaryMin:   fieldFloat(f["Lương tối thiểu"]),
		SalaryMax:   fieldFloat(f["Lương tối đa"]),
		JDLink:      fieldString(f["Link JD"]),
		Experience:  fieldString(f["Kinh nghiệm"]),
		Status:      fieldString(f["Trạng thái"]),
		Lat:         fieldFloat(f["lat"]),
		Lng:         fieldFloat(f["lng"]),
	}
}

// fieldString tolerates the shapes Bitable hands back for a text column:
// plain strings, numbers, rich-text segment lists, and link objects.
func fieldString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case map[string]any:
		if s, ok := t["text"].(string); ok {
			return s
		}
		if s, ok := t["link"].(string); ok {
			return s
		}
		return ""
	case []any:
		out := ""
		for _, seg := range t {
			out += fieldString(seg)
		}
		return out
	default:
		return ""
	}
}

func fieldFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
