package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"resqcart/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200

	pageKeyPrefix = "p1."
)

var errMalformedCursor = errs.New("malformed cursor")

type Cursor struct {
	After string `json:"after,omitempty"`
}

// PageKey is the keyset position (created_at, id) of the last row on a page.
type PageKey struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// Encode truncates to microseconds, the precision of timestamptz.
func (k PageKey) Encode() string {
	raw := pageKeyPrefix + strconv.FormatInt(k.CreatedAt.UnixMicro(), 36) + "." + k.ID.String()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func ParsePageKey(after string) (PageKey, error) {
	raw, err := base64.RawURLEncoding.DecodeString(after)
	if err != nil {
		return PageKey{}, errs.Mark(err, errMalformedCursor)
	}
	rest, ok := strings.CutPrefix(string(raw), pageKeyPrefix)
	if !ok {
		return PageKey{}, errMalformedCursor
	}
	micros, rawID, ok := strings.Cut(rest, ".")
	if !ok {
		return PageKey{}, errMalformedCursor
	}

	ts, err := strconv.ParseInt(micros, 36, 64)
	if err != nil {
		return PageKey{}, errs.Mark(err, errMalformedCursor)
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return PageKey{}, errs.Mark(err, errMalformedCursor)
	}
	return PageKey{CreatedAt: time.UnixMicro(ts).UTC(), ID: id}, nil
}

func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	}
	return limit
}
