package enums

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Transport selects the wire binding of a model server client.
type Transport uint8

const (
	TransportUnknown Transport = iota
	TransportHTTP
	TransportGRPC
)

var (
	transportName = map[uint8]string{
		0: "unknown",
		1: "http",
		2: "grpc",
	}

	transportValue = map[string]Transport{
		"unknown": TransportUnknown,
		"http":    TransportHTTP,
		"grpc":    TransportGRPC,
	}
)

func (t Transport) String() string {
	if name, ok := transportName[uint8(t)]; ok {
		return name
	}
	return transportName[0]
}

func (t Transport) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Transport) UnmarshalJSON(data []byte) (err error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t, err = ParseTransport(s)
	return err
}

// UnmarshalText lets Transport be decoded from yaml and env values.
func (t *Transport) UnmarshalText(text []byte) (err error) {
	*t, err = ParseTransport(string(text))
	return err
}

func ParseTransport(s string) (Transport, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	value, ok := transportValue[s]
	if !ok || value == TransportUnknown {
		return TransportUnknown, fmt.Errorf("%q is not a valid Transport", s)
	}
	return value, nil
}
