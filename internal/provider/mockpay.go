package provider

import "context"

// Mockpay settles everything in-process. Used in development and tests.
type Mockpay struct{}

func NewMockpay() *Mockpay {
	return &Mockpay{}
}

func (p *Mockpay) Authorize(_ context.Context, ref string, _ int64) (string, error) {
	return "secret_" + ref, nil
}

func (p *Mockpay) Capture(_ context.Context, ref string, _ int64) (string, error) {
	return "cap_" + ref, nil
}

func (p *Mockpay) Refund(_ context.Context, ref string, _ string) (string, error) {
	return "ref_" + ref, nil
}
