package helpers

import (
	"context"

	"dostfrnd_server/global"
	"dostfrnd_server/schemas"
	"dostfrnd_server/store"
)

// SuggestIdentities returns the not-yet-rejected identities sharing the
// caller's title, in store order, without sensitive fields. A vanished
// caller is a not-found error, not an empty list.
func SuggestIdentities(ctx context.Context, currentID string) ([]schemas.PublicIdentitySchema, error) {

	current, err := global.Identities.FindByID(ctx, currentID)
	if err != nil {
		return nil, err
	}

	candidates, err := global.Identities.Find(ctx, store.IdentityFilter{Title: current.Title})
	if err != nil {
		return nil, err
	}

	suggested := []schemas.PublicIdentitySchema{}
	for i := range candidates {
		if candidates[i].ID == current.ID || current.Rejected(candidates[i].ID) {
			continue
		}
		suggested = append(suggested, schemas.PublicIdentity(&candidates[i]))
	}

	return suggested, nil
}
