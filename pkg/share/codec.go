// Package share turns a trip record into a transportable URL or file and
// back. Encoding is JSON -> percent-escape -> base64, embedded as a
// "#share=" fragment so the payload survives copy-paste through chat
// apps and address bars unchanged.
package share

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/wayfarer/wayfarer-cli/internal/logger"
	"github.com/wayfarer/wayfarer-cli/pkg/models"
	"github.com/wayfarer/wayfarer-cli/pkg/store"
)

// DefaultBaseURL is the page a share link points at when the caller does
// not supply one.
const DefaultBaseURL = "https://wayfarer.app/planner"

const fragmentParam = "#share="

// Codec encodes and decodes share payloads.
type Codec struct {
	BaseURL string
	log     logger.Logger
}

// NewCodec returns a codec. An empty baseURL falls back to
// DefaultBaseURL; a nil log discards diagnostics.
func NewCodec(baseURL string, log logger.Logger) *Codec {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Codec{BaseURL: baseURL, log: log}
}

// EncodeToURL serializes the record into a share URL. Marshal failures
// are reported as errors, never panics.
func (c *Codec) EncodeToURL(rec *models.TripRecord) (string, error) {
	if rec == nil {
		return "", fmt.Errorf("cannot encode nil trip")
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("failed to serialize trip: %w", err)
	}
	payload := base64.StdEncoding.EncodeToString([]byte(url.QueryEscape(string(data))))
	return c.BaseURL + fragmentParam + payload, nil
}

// DecodeFromURL extracts and decodes the share fragment. Any malformed
// input (missing fragment, bad base64, bad escape, bad JSON, payload
// that is not a trip) yields (nil, false); decoding never fails loudly.
func (c *Codec) DecodeFromURL(raw string) (*models.TripRecord, bool) {
	payload, ok := extractPayload(raw)
	if !ok {
		c.log.Debug("share decode: no fragment in input")
		return nil, false
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		c.log.Debug("share decode: invalid base64", logger.Error(err))
		return nil, false
	}

	unescaped, err := url.QueryUnescape(string(decoded))
	if err != nil {
		c.log.Debug("share decode: invalid escape sequence", logger.Error(err))
		return nil, false
	}

	var rec models.TripRecord
	if err := json.Unmarshal([]byte(unescaped), &rec); err != nil {
		c.log.Debug("share decode: invalid JSON payload", logger.Error(err))
		return nil, false
	}
	if rec.Title == "" && rec.StartDate == "" {
		c.log.Debug("share decode: payload is not a trip record")
		return nil, false
	}
	return &rec, true
}

// ImportShared decodes a share URL and commits the trip as a new record,
// dropping any embedded identifier so a shared link can never overwrite
// a local trip that happens to reuse the same ID.
func (c *Codec) ImportShared(raw string, st *store.TripStore) (*models.TripRecord, error) {
	rec, ok := c.DecodeFromURL(raw)
	if !ok {
		return nil, fmt.Errorf("no trip data found in URL")
	}
	rec.ID = ""
	saved, err := st.Save(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to save imported trip: %w", err)
	}
	return saved, nil
}

func extractPayload(raw string) (string, bool) {
	if idx := strings.Index(raw, fragmentParam); idx >= 0 {
		return strings.TrimSpace(raw[idx+len(fragmentParam):]), true
	}
	if rest, found := strings.CutPrefix(raw, "share="); found {
		return strings.TrimSpace(rest), true
	}
	return "", false
}
