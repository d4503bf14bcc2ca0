package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nstoliar/escrowd/pkg/clients"
)

// Source returns the RUB value of one unit of the given currency.
type Source interface {
	Rate(ctx context.Context, code string) (float64, error)
}

type Client struct {
	url    string
	client clients.HTTPClientI
}

func NewClient(url string, client clients.HTTPClientI) *Client {
	return &Client{url: url, client: client}
}

type rateResponse struct {
	Code string  `json:"code"`
	Rate float64 `json:"rate"`
}

func (c *Client) Rate(ctx context.Context, code string) (float64, error) {
	statusCode, respBody, _, err := c.client.Get(c.url+"/api/rates/"+code, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch rate for %s: %w", code, err)
	}
	if statusCode != http.StatusOK {
		return 0, fmt.Errorf("rate source returned status %d for %s", statusCode, code)
	}

	var resp rateResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return 0, fmt.Errorf("failed to parse rate response: %w", err)
	}
	if resp.Rate <= 0 {
		return 0, fmt.Errorf("rate source returned non-positive rate %f for %s", resp.Rate, code)
	}
	return resp.Rate, nil
}
