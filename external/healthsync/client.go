// Package healthsync is the client for the wearable snapshot service, which
// owns raw device ingestion and exposes consolidated daily rows.
package healthsync

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/drakonoslav/bulk-coach-sub003/schema"
)

type Client struct {
	apiEndpoint string
	client      *http.Client
}

func NewClient(endpoint string) *Client {
	u, _ := url.Parse(endpoint)

	apiEndpoint := &url.URL{
		Scheme: u.Scheme,
		Host:   u.Host,
	}

	return &Client{
		apiEndpoint: apiEndpoint.String(),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) makeRequest(request *http.Request, token string) (*http.Response, error) {
	request.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))
	if request.Header.Get("Content-Type") == "" {
		request.Header.Add("Content-Type", "application/json")
	}
	return c.client.Do(request)
}

// Snapshot is one pull of consolidated daily rows from the sync service. The
// cumulative counters let the importer detect regressed exports.
type Snapshot struct {
	Days          []schema.DailySample   `json:"days"`
	ProxySessions []schema.ProxySession  `json:"proxySessions"`
	Cumulative    map[string]float64     `json:"cumulative"`
	Meta          map[string]interface{} `json:"meta"`
}

// GetSnapshot fetches the last `days` days of consolidated rows.
func (c *Client) GetSnapshot(token string, days int) (*Snapshot, error) {
	req, _ := http.NewRequest("GET", fmt.Sprintf("%s/v1/snapshot?days=%d", c.apiEndpoint, days), nil)

	r, err := c.makeRequest(req, token)
	if err != nil {
		return nil, err
	}
	defer r.Body.Close()

	if r.StatusCode != 200 {
		b, _ := httputil.DumpResponse(r, true)
		log.WithField("resp", string(b)).Debug("error from healthsync api")
		return nil, fmt.Errorf("fail to get snapshot")
	}

	var snapshot Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
		return nil, err
	}

	return &snapshot, nil
}
