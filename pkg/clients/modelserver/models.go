package modelserver

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/api"
)

const (
	schemeHTTP  = "http"
	schemeHTTPS = "https"

	// last_updated is written by the server in RFC 2822 form
	rfc2822 = "Mon, 2 Jan 2006 15:04:05 -0700"
)

// Endpoint is the network address of a model server.
type Endpoint struct {
	Scheme string
	Host   string
	Port   int
}

// ParseEndpoint accepts "host:port" or "http(s)://host[:port]". A missing
// scheme means http and a missing port is filled from the scheme.
func ParseEndpoint(raw string) (Endpoint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Endpoint{}, fmt.Errorf("endpoint is empty")
	}
	if !strings.Contains(raw, "://") {
		raw = schemeHTTP + "://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return Endpoint{}, fmt.Errorf("invalid endpoint %q: %w", raw, err)
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != schemeHTTP && scheme != schemeHTTPS {
		return Endpoint{}, fmt.Errorf("invalid endpoint %q: unsupported scheme %q", raw, u.Scheme)
	}
	if u.Hostname() == "" {
		return Endpoint{}, fmt.Errorf("invalid endpoint %q: host is empty", raw)
	}
	if u.Path != "" && u.Path != "/" {
		return Endpoint{}, fmt.Errorf("invalid endpoint %q: paths are not supported", raw)
	}
	port := 80
	if scheme == schemeHTTPS {
		port = 443
	}
	if p := u.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil || port <= 0 || port > 65535 {
			return Endpoint{}, fmt.Errorf("invalid endpoint %q: bad port %q", raw, p)
		}
	}
	return Endpoint{Scheme: scheme, Host: u.Hostname(), Port: port}, nil
}

// Address returns host:port.
func (e Endpoint) Address() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// URL returns scheme://host:port.
func (e Endpoint) URL() string {
	return e.Scheme + "://" + e.Address()
}

func (e Endpoint) String() string {
	return e.URL()
}

// ModelMetadata describes a model loaded in the server.
type ModelMetadata struct {
	Name        string `json:"name"`
	Framework   string `json:"framework"`
	Path        string `json:"path"`
	LastUpdated string `json:"last_updated"`
}

// LastUpdatedTime parses LastUpdated, which the server writes in RFC 2822
// form. RFC 3339 is accepted as well.
func (m ModelMetadata) LastUpdatedTime() (time.Time, error) {
	if t, err := time.Parse(rfc2822, m.LastUpdated); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, m.LastUpdated)
}

// ModelCatalog is the list of models loaded in the server, in server order.
type ModelCatalog struct {
	Total  int             `json:"total"`
	Models []ModelMetadata `json:"models"`
}

// newModelCatalog fails with a decode error when total disagrees with the
// listed models.
func newModelCatalog(total int, models []ModelMetadata) (*ModelCatalog, error) {
	if total != len(models) {
		return nil, api.NewDecodeError(opGetModels,
			fmt.Sprintf("models response total is %d but lists %d models", total, len(models)), nil)
	}
	if models == nil {
		models = []ModelMetadata{}
	}
	return &ModelCatalog{Total: total, Models: models}, nil
}

// Names returns the model names in catalog order.
func (c *ModelCatalog) Names() []string {
	names := make([]string, 0, len(c.Models))
	for _, m := range c.Models {
		names = append(names, m.Name)
	}
	return names
}
