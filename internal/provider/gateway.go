package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nstoliar/escrowd/pkg/clients"
)

// gateway talks to the payment gateway emulator shared by the bank-backed
// providers. Each provider has its own path prefix on the emulator.
type gateway struct {
	url    string
	client clients.HTTPClientI
}

func newGateway(url string, client clients.HTTPClientI) *gateway {
	return &gateway{url: url, client: client}
}

type gatewayRequest struct {
	Ref       string `json:"ref"`
	AmountRub int64  `json:"amount_rub,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

type gatewayResponse struct {
	Reference    string `json:"reference"`
	ClientSecret string `json:"client_secret,omitempty"`
}

func (g *gateway) call(ctx context.Context, path string, req gatewayRequest) (*gatewayResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gateway request: %w", err)
	}

	statusCode, respBody, err := g.client.Post(g.url+path, nil, body)
	if err != nil {
		return nil, fmt.Errorf("gateway call %s failed: %w", path, err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway call %s returned status %d", path, statusCode)
	}

	var resp gatewayResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse gateway response: %w", err)
	}
	return &resp, nil
}

// bankProvider is the shared shape of the gateway-backed providers.
type bankProvider struct {
	gw   *gateway
	path string
}

func (p *bankProvider) Authorize(ctx context.Context, ref string, amountRub int64) (string, error) {
	resp, err := p.gw.call(ctx, p.path+"/authorize", gatewayRequest{Ref: ref, AmountRub: amountRub})
	if err != nil {
		return "", err
	}
	return resp.ClientSecret, nil
}

func (p *bankProvider) Capture(ctx context.Context, ref string, amountRub int64) (string, error) {
	resp, err := p.gw.call(ctx, p.path+"/capture", gatewayRequest{Ref: ref, AmountRub: amountRub})
	if err != nil {
		return "", err
	}
	return resp.Reference, nil
}

func (p *bankProvider) Refund(ctx context.Context, ref string, reason string) (string, error) {
	resp, err := p.gw.call(ctx, p.path+"/refund", gatewayRequest{Ref: ref, Reason: reason})
	if err != nil {
		return "", err
	}
	return resp.Reference, nil
}

type Yoomoney struct{ bankProvider }

func NewYoomoney(gw *gateway) *Yoomoney {
	return &Yoomoney{bankProvider{gw: gw, path: "/api/yoomoney"}}
}

type Sber struct{ bankProvider }

func NewSber(gw *gateway) *Sber {
	return &Sber{bankProvider{gw: gw, path: "/api/sber"}}
}

type Tinkoff struct{ bankProvider }

func NewTinkoff(gw *gateway) *Tinkoff {
	return &Tinkoff{bankProvider{gw: gw, path: "/api/tinkoff"}}
}
