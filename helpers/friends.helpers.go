package helpers

import (
	"context"
	Errors "errors"

	"dostfrnd_server/config"
	"dostfrnd_server/global"
	"dostfrnd_server/schemas"
	"dostfrnd_server/store"
)

// ErrInvalidCategory is returned when an identity carries a title outside
// the closed enumeration
var ErrInvalidCategory = Errors.New("title outside the known categories")

func identitySummary(i *schemas.Identity) schemas.FriendSummarySchema {
	return schemas.FriendSummarySchema{
		Name:     i.Name,
		Email:    i.Email,
		ImageURL: i.ImageURL,
		Title:    i.Title,
		UserID:   i.ID,
	}
}

// FriendsList assembles the deduplicated friends list for currentID from the
// accepted ledger records. Records whose counterpart no longer resolves are
// skipped. The caller's own summary is appended when configured (on by
// default). Entries are deduplicated by full structural equality, in ledger
// scan order.
func FriendsList(ctx context.Context, currentID string) ([]schemas.FriendSummarySchema, error) {

	current, err := global.Identities.FindByID(ctx, currentID)
	if err != nil {
		return nil, err
	}

	accepted, err := global.Requests.FindAcceptedInvolving(ctx, currentID)
	if err != nil {
		return nil, err
	}

	entries := []schemas.FriendSummarySchema{}
	for i := range accepted {
		other, err := global.Identities.FindByID(ctx, accepted[i].Other(currentID))
		if err != nil {
			if err == store.ErrNotFound {
				continue
			}
			return nil, err
		}
		entries = append(entries, identitySummary(other))
	}

	if config.Config.Friends.IncludeSelf {
		entries = append(entries, identitySummary(current))
	}

	seen := make(map[schemas.FriendSummarySchema]struct{}, len(entries))
	unique := entries[:0]
	for _, entry := range entries {
		if _, dup := seen[entry]; dup {
			continue
		}
		seen[entry] = struct{}{}
		unique = append(unique, entry)
	}

	return unique, nil
}

// FriendsCountByCategory counts the distinct identities involved in accepted
// requests per title. Both parties of a record are added under their own
// title, so one friendship feeds two buckets (collapsed to one by the set
// when both parties share a title). Pairs with an unresolvable party are
// skipped. The accumulator is local to the call.
func FriendsCountByCategory(ctx context.Context) (map[string]int, error) {

	sets := make(map[string]map[string]struct{}, len(schemas.Titles))
	for _, title := range schemas.Titles {
		sets[title] = make(map[string]struct{})
	}

	accepted, err := global.Requests.FindAccepted(ctx)
	if err != nil {
		return nil, err
	}

	for i := range accepted {
		sender, err := global.Identities.FindByID(ctx, accepted[i].SenderID)
		if err != nil {
			if err == store.ErrNotFound {
				continue
			}
			return nil, err
		}
		recipient, err := global.Identities.FindByID(ctx, accepted[i].RecipientID)
		if err != nil {
			if err == store.ErrNotFound {
				continue
			}
			return nil, err
		}

		senderSet, ok := sets[sender.Title]
		if !ok {
			return nil, ErrInvalidCategory
		}
		recipientSet, ok := sets[recipient.Title]
		if !ok {
			return nil, ErrInvalidCategory
		}

		senderSet[sender.ID] = struct{}{}
		recipientSet[recipient.ID] = struct{}{}
	}

	counts := make(map[string]int, len(schemas.Titles))
	for _, title := range schemas.Titles {
		counts[title] = len(sets[title])
	}

	return counts, nil
}
