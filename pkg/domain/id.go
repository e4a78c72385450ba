package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Entity id prefixes, kept from the seed fixtures so ids stay readable in
// logs and API payloads.
const (
	PrefixUser    = "usr"
	PrefixProduct = "prd"
	PrefixOrder   = "ord"
	PrefixReview  = "rev"
	PrefixAddress = "addr"
	PrefixItem    = "item"
)

// NewID synthesizes an opaque string identifier with the given prefix.
func NewID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.NewString())
}
