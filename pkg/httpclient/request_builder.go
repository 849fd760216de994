package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
)

const (
	HeaderContentType          = "Content-Type"
	HeaderAccept               = "Accept"
	HeaderValueApplicationJson = "application/json"
)

type RequestBuilder struct {
	endpoint string
	path     string
	method   string
	headers  map[string]string
	query    url.Values
	body     any
	ctx      context.Context
}

func NewHttpRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		headers: make(map[string]string),
		query:   make(url.Values),
	}
}

// WithEndpoint sets scheme://host:port for the request
func (h *RequestBuilder) WithEndpoint(endpoint string) *RequestBuilder {
	h.endpoint = endpoint
	return h
}

// WithPath sets the path for the request
func (h *RequestBuilder) WithPath(path string) *RequestBuilder {
	h.path = path
	return h
}

// WithMethod sets the method for the request
func (h *RequestBuilder) WithMethod(method string) *RequestBuilder {
	h.method = method
	return h
}

// WithHeader adds the header for the request, empty values are skipped
func (h *RequestBuilder) WithHeader(key, value string) *RequestBuilder {
	if value != "" {
		h.headers[key] = value
	}
	return h
}

// WithQuery adds a query parameter
func (h *RequestBuilder) WithQuery(key, value string) *RequestBuilder {
	h.query.Add(key, value)
	return h
}

// WithBody sets a body that is encoded as JSON
func (h *RequestBuilder) WithBody(body any) *RequestBuilder {
	h.body = body
	return h
}

// WithContext sets the context for the request
func (h *RequestBuilder) WithContext(ctx context.Context) *RequestBuilder {
	h.ctx = ctx
	return h
}

// BuildContentTypeJson validates the builder and builds the request. A body,
// when set, is sent as application/json.
func (h *RequestBuilder) BuildContentTypeJson() (*http.Request, error) {
	if len(h.endpoint) == 0 {
		return nil, errors.New("endpoint is required")
	}
	if len(h.path) == 0 {
		return nil, errors.New("path is required")
	}
	if len(h.method) == 0 {
		return nil, errors.New("method is required")
	}
	if h.ctx == nil {
		return nil, errors.New("context is required, pass context.Background() if not required")
	}
	var body io.Reader
	if h.body != nil {
		requestBody, err := json.Marshal(h.body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(requestBody)
	}
	target := h.endpoint + h.path
	if len(h.query) > 0 {
		target += "?" + h.query.Encode()
	}
	req, err := http.NewRequestWithContext(h.ctx, h.method, target, body)
	if err != nil {
		return nil, err
	}
	for key, value := range h.headers {
		req.Header.Set(key, value)
	}
	if body != nil {
		req.Header.Set(HeaderContentType, HeaderValueApplicationJson)
	}
	req.Header.Set(HeaderAccept, HeaderValueApplicationJson)
	return req, nil
}
