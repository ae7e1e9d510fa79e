package domain

import "errors"

var (
	ErrUpstreamTransport = errors.New("upstream: transport failure")
	ErrUpstreamSchema    = errors.New("upstream: unexpected payload shape")
	ErrUpstreamEmpty     = errors.New("upstream: no property in response")
	ErrMappingFault      = errors.New("mapping: rate plan has no dates")
)

// IsUpstream reports whether err originates from the rates dependency
// (including payloads that violate its single-day contract).
func IsUpstream(err error) bool {
	return errors.Is(err, ErrUpstreamTransport) ||
		errors.Is(err, ErrUpstreamSchema) ||
		errors.Is(err, ErrUpstreamEmpty) ||
		errors.Is(err, ErrMappingFault)
}
