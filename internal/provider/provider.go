package provider

import (
	"context"

	"github.com/nstoliar/escrowd/internal/domain"
	"github.com/nstoliar/escrowd/pkg/clients"
)

// Provider is the capability interface every payment provider implements.
// References are the engine-generated provider_ref values; the returned
// strings are provider-side references.
type Provider interface {
	Authorize(ctx context.Context, ref string, amountRub int64) (clientSecret string, err error)
	Capture(ctx context.Context, ref string, amountRub int64) (captureRef string, err error)
	Refund(ctx context.Context, ref string, reason string) (refundRef string, err error)
}

// Registry resolves a provider implementation by its tag.
type Registry struct {
	providers map[string]Provider
}

func NewRegistry(providers map[string]Provider) *Registry {
	return &Registry{providers: providers}
}

func (r *Registry) Get(tag string) (Provider, bool) {
	p, ok := r.providers[tag]
	return p, ok
}

// DefaultRegistry wires the four supported providers: the in-process mock and
// the three gateway-backed ones.
func DefaultRegistry(gatewayURL string, client clients.HTTPClientI) *Registry {
	gw := newGateway(gatewayURL, client)
	return NewRegistry(map[string]Provider{
		domain.ProviderMockpay:  NewMockpay(),
		domain.ProviderYoomoney: NewYoomoney(gw),
		domain.ProviderSber:     NewSber(gw),
		domain.ProviderTinkoff:  NewTinkoff(gw),
	})
}
