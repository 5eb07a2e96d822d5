package services

import (
	"encoding/base64"
	"encoding/json"

	"storefront/models"

	"github.com/gin-gonic/gin"
)

const (
	GuestCartCookie     = "guest_cart"
	guestCartMaxEntries = 10
	guestCartMaxAge     = 7 * 24 * 60 * 60
)

// ReadGuestCart decodes the guest cart cookie. Anything malformed reads as an
// empty cart rather than an error; the cookie is client-visible and carries no
// integrity guarantee.
func ReadGuestCart(c *gin.Context) []models.GuestCartEntry {
	raw, err := c.Cookie(GuestCartCookie)
	if err != nil || raw == "" {
		return []models.GuestCartEntry{}
	}

	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return []models.GuestCartEntry{}
	}

	var entries []models.GuestCartEntry
	if err := json.Unmarshal(decoded, &entries); err != nil {
		return []models.GuestCartEntry{}
	}
	return entries
}

// WriteGuestCart stores the entry list in the cookie, base64url-wrapped since
// raw JSON is not a legal cookie value. Lists over the cap are truncated
// keeping the head, so the oldest entries win and later adds are dropped.
func WriteGuestCart(c *gin.Context, entries []models.GuestCartEntry) {
	if len(entries) > guestCartMaxEntries {
		entries = entries[:guestCartMaxEntries]
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return
	}

	encoded := base64.RawURLEncoding.EncodeToString(data)
	c.SetCookie(GuestCartCookie, encoded, guestCartMaxAge, "/", "", false, false)
}

// ExpireGuestCart blanks the cookie and expires it immediately.
func ExpireGuestCart(c *gin.Context) {
	c.SetCookie(GuestCartCookie, "", -1, "/", "", false, false)
}
