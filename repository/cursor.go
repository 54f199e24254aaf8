package repository

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"buddyscript/utils"
)

// Cursor marks the last row of a consumed page. Feed ordering is
// (created_at DESC, id DESC); the id breaks ties so two posts sharing a
// timestamp are neither skipped nor repeated across pages.
type Cursor struct {
	CreatedAt time.Time
	ID        string
}

// EncodeCursor produces the opaque token handed back to clients.
func EncodeCursor(createdAt time.Time, id string) string {
	raw := strconv.FormatInt(createdAt.UnixNano(), 10) + "." + id
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses a client-supplied token. Malformed tokens are a
// validation error, not an internal one.
func DecodeCursor(token string) (Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, utils.NewValidationError("Invalid pagination cursor")
	}

	nanos, id, ok := strings.Cut(string(raw), ".")
	if !ok || id == "" {
		return Cursor{}, utils.NewValidationError("Invalid pagination cursor")
	}

	n, err := strconv.ParseInt(nanos, 10, 64)
	if err != nil {
		return Cursor{}, utils.NewValidationError("Invalid pagination cursor")
	}

	return Cursor{CreatedAt: time.Unix(0, n).UTC(), ID: id}, nil
}

// Admits reports whether the row identified by (createdAt, id) is
// strictly older than the cursor and therefore belongs to a later page.
func (c Cursor) Admits(createdAt time.Time, id string) bool {
	if createdAt.Before(c.CreatedAt) {
		return true
	}
	return createdAt.Equal(c.CreatedAt) && id < c.ID
}

func (c Cursor) String() string {
	return fmt.Sprintf("cursor(%s, %s)", c.CreatedAt.Format(time.RFC3339Nano), c.ID)
}
