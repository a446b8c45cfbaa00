package domain

import (
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// EmptySlotSource is the fixed identity source of a weapon slot that holds
// no weapons.
const EmptySlotSource = "empty_slot"

// deriveID hashes an identity source string down to a 16 hex character id.
// Two entities with equal identity sources always share an id, independent
// of instance.
func deriveID(source string) string {
	sum := blake2b.Sum256([]byte(source))
	return hex.EncodeToString(sum[:8])
}

// quantitySource renders an id→quantity mapping as a deterministic string:
// pairs sorted by id so iteration order never leaks into identity.
func quantitySource(quantities map[string]int) string {
	ids := make([]string, 0, len(quantities))
	for id := range quantities {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	pairs := make([]string, 0, len(ids))
	for _, id := range ids {
		pairs = append(pairs, fmt.Sprintf("%s x%d", id, quantities[id]))
	}
	return strings.Join(pairs, ",")
}
