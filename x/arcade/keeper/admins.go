package keeper

import (
	"context"
	"slices"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"onchainarcade/x/arcade/types"
)

func (k Keeper) GetAdmins(ctx context.Context) ([]string, error) {
	return getItem(ctx, k.Admins, "admins")
}

func (k Keeper) IsAdmin(ctx context.Context, addr string) (bool, error) {
	admins, err := k.GetAdmins(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(admins, addr), nil
}

func (k Keeper) requireAdmin(ctx context.Context, who string) error {
	ok, err := k.IsAdmin(ctx, who)
	if err != nil {
		return err
	}
	if !ok {
		return types.ErrUnauthorized.Wrapf("%s is not an admin", who)
	}
	return nil
}

// AddAdmins appends ids to the admin set. Admin-gated. Ids that are already
// admins, or repeated within ids, are skipped; the added ids are returned in
// input order.
func (k Keeper) AddAdmins(ctx context.Context, requester string, ids []string) ([]string, error) {
	admins, err := k.GetAdmins(ctx)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(admins, requester) {
		return nil, types.ErrUnauthorized.Wrapf("%s is not an admin", requester)
	}
	if len(ids) == 0 {
		return nil, types.ErrValidation.Wrap("no admins given")
	}
	if err := types.ValidateAddresses(ids); err != nil {
		return nil, err
	}

	next := appendUnique(admins, ids)
	added := next[len(admins):]
	if len(added) == 0 {
		return nil, nil
	}
	if err := k.Admins.Set(ctx, next); err != nil {
		return nil, storageErr("save admins", err)
	}
	return append([]string(nil), added...), nil
}

// RemoveAdmin drops requester from the admin set. Anyone may call it; callers that
// are not admins leave the set unchanged. Removing the last admin is allowed and
// leaves every admin-gated command permanently locked.
func (k Keeper) RemoveAdmin(ctx context.Context, requester string) (removed bool, remaining int, err error) {
	if _, err := sdk.AccAddressFromBech32(requester); err != nil {
		return false, 0, types.ErrValidation.Wrapf("invalid sender %q: %v", requester, err)
	}
	admins, err := k.GetAdmins(ctx)
	if err != nil {
		return false, 0, err
	}
	if !slices.Contains(admins, requester) {
		return false, len(admins), nil
	}

	next := slices.DeleteFunc(slices.Clone(admins), func(a string) bool { return a == requester })
	if err := k.Admins.Set(ctx, next); err != nil {
		return false, 0, storageErr("save admins", err)
	}
	if len(next) == 0 {
		k.Logger().Warn("last admin left; admin-gated commands are locked", "admin", requester)
	}
	return true, len(next), nil
}

// appendUnique appends the ids not yet present in dst, preserving order.
func appendUnique(dst []string, ids []string) []string {
	out := slices.Clone(dst)
	if out == nil {
		out = make([]string, 0, len(ids))
	}
	for _, id := range ids {
		if slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}
	return out
}
