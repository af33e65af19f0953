package domain

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DefaultBaseURL is the historical download endpoint of Yahoo Finance.
const DefaultBaseURL = "https://query1.finance.yahoo.com/v7/finance/download"

// Endpoint finance-service request for a price history.
type Endpoint struct {
	baseURL string
	events  History
}

// History returns the requested history.
func (e Endpoint) History() History {
	return e.events
}

// URL formats the request URL:
// <base>/<SYMBOL>?events=history&interval=<iv>&period1=<unix>&period2=<unix>
func (e Endpoint) URL() string {
	q := url.Values{}
	q.Set("period1", strconv.FormatInt(e.events.period1.Unix(), 10))
	q.Set("period2", strconv.FormatInt(e.events.period2.Unix(), 10))
	q.Set("interval", e.events.interval.String())
	q.Set("events", "history")

	return strings.TrimRight(e.baseURL, "/") + "/" + url.PathEscape(e.events.symbol.Ticker()) + "?" + q.Encode()
}

// EndpointBuilder accumulates the fields of an Endpoint.
type EndpointBuilder struct {
	baseURL string
	events  *History
}

// NewEndpointBuilder returns a builder preset with DefaultBaseURL.
func NewEndpointBuilder() *EndpointBuilder {
	return &EndpointBuilder{baseURL: DefaultBaseURL}
}

// BaseURL overrides the service base URL.
func (b *EndpointBuilder) BaseURL(u string) *EndpointBuilder {
	b.baseURL = u
	return b
}

// Events sets the requested history.
func (b *EndpointBuilder) Events(h History) *EndpointBuilder {
	b.events = &h
	return b
}

// Build validates the accumulated fields and returns the Endpoint.
func (b *EndpointBuilder) Build() (Endpoint, error) {
	if b.baseURL == "" {
		return Endpoint{}, missing("endpoint", "base url")
	}
	if b.events == nil {
		return Endpoint{}, missing("endpoint", "events")
	}

	u, err := url.Parse(b.baseURL)
	if err != nil {
		return Endpoint{}, errors.Wrapf(err, "endpoint base url %q", b.baseURL)
	}
	if u.Scheme == "" || u.Host == "" {
		return Endpoint{}, errors.Errorf("endpoint base url %q must be absolute", b.baseURL)
	}

	return Endpoint{baseURL: b.baseURL, events: *b.events}, nil
}
