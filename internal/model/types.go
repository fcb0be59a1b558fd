package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// MediaType is the closed set of kinds the metadata provider reports.
type MediaType string

const (
	MediaTypeMovie   MediaType = "movie"
	MediaTypeSeries  MediaType = "series"
	MediaTypeEpisode MediaType = "episode"
	MediaTypeGame    MediaType = "game"
)

var mediaTypes = map[MediaType]bool{
	MediaTypeMovie:   true,
	MediaTypeSeries:  true,
	MediaTypeEpisode: true,
	MediaTypeGame:    true,
}

// ParseMediaType maps a provider value to a MediaType.
// An empty value means "not reported" and yields the zero MediaType.
func ParseMediaType(s string) (MediaType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	t := MediaType(strings.ToLower(s))
	if !mediaTypes[t] {
		return "", fmt.Errorf("unknown media type %q", s)
	}
	return t, nil
}

func (t MediaType) String() string {
	return string(t)
}

func (t MediaType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *MediaType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("unmarshal MediaType: %w", err)
	}
	parsed, err := ParseMediaType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t MediaType) Value() (driver.Value, error) {
	if t == "" {
		return nil, nil
	}
	return string(t), nil
}

func (t *MediaType) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case []byte:
		parsed, err := ParseMediaType(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case string:
		parsed, err := ParseMediaType(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("MediaType.Scan: expected string or []byte, got %T", src)
	}
}
