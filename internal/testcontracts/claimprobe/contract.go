// Package claimprobe implements an auxiliary contract for arena tests. It
// claims its own escrow balance and, when armed, re-enters the arena's claim
// method from inside the GAS payment callback to probe the reentrancy
// protection.
package claimprobe

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	arenaKey   = "arena"
	reenterKey = "reenter"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		return
	}
	storage.Put(storage.GetContext(), arenaKey, data.(interop.Hash160))
}

// Grab claims the probe's full arena balance to itself. With reenter set the
// incoming GAS payment triggers a second claim before the first one
// finishes.
func Grab(reenter bool) {
	ctx := storage.GetContext()
	if reenter {
		storage.Put(ctx, reenterKey, []byte{1})
	} else {
		storage.Delete(ctx, reenterKey)
	}

	me := runtime.GetExecutingScriptHash()
	arena := storage.Get(ctx, arenaKey).(interop.Hash160)
	contract.Call(arena, "claim", contract.All, me, me)
}

// OnNEP17Payment receives the claimed GAS. While the reenter flag is set it
// immediately calls claim again, still inside the original claim call.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetContext()
	if storage.Get(ctx, reenterKey) == nil {
		return
	}
	storage.Delete(ctx, reenterKey)

	me := runtime.GetExecutingScriptHash()
	arena := storage.Get(ctx, arenaKey).(interop.Hash160)
	contract.Call(arena, "claim", contract.All, me, me)
}
