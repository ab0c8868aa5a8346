package tests

import (
	"path"
	"testing"

	"github.com/dragonfly-xyz/nottingham-contracts-sub001/common"
	arenarpc "github.com/dragonfly-xyz/nottingham-contracts-sub001/rpc/arena"
	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const depositAmount = 1_0000_0000

func TestArenaDeposit(t *testing.T) {
	a := newArenaEnv(t)
	player := a.e.NewAccount(t)

	a.host().Invoke(t, 0, "balanceOf", player.ScriptHash())

	a.deposit(t, player.ScriptHash(), depositAmount)
	a.host().Invoke(t, depositAmount, "balanceOf", player.ScriptHash())

	t.Run("deposits accumulate", func(t *testing.T) {
		a.deposit(t, player.ScriptHash(), depositAmount)
		a.host().Invoke(t, 2*depositAmount, "balanceOf", player.ScriptHash())
	})

	t.Run("sender credited without data", func(t *testing.T) {
		a.deposit(t, a.e.CommitteeHash, depositAmount)
		a.host().Invoke(t, depositAmount, "balanceOf", a.e.CommitteeHash)
	})
}

func TestArenaClaim(t *testing.T) {
	a := newArenaEnv(t)
	player := a.e.NewAccount(t)
	recipient := a.e.NewAccount(t)

	t.Run("zero balance", func(t *testing.T) {
		a.as(player).InvokeFail(t, arenarpc.ErrInsufficientBalance, "claim",
			player.ScriptHash(), recipient.ScriptHash())
	})

	a.deposit(t, player.ScriptHash(), depositAmount)

	t.Run("player witness required", func(t *testing.T) {
		a.host().InvokeFail(t, common.ErrWitnessFailed, "claim",
			player.ScriptHash(), recipient.ScriptHash())
	})

	before := a.e.Chain.GetUtilityTokenBalance(recipient.ScriptHash())
	a.as(player).Invoke(t, stackitem.Null{}, "claim", player.ScriptHash(), recipient.ScriptHash())
	after := a.e.Chain.GetUtilityTokenBalance(recipient.ScriptHash())

	require.EqualValues(t, depositAmount, after.Int64()-before.Int64())
	a.host().Invoke(t, 0, "balanceOf", player.ScriptHash())

	t.Run("no second claim", func(t *testing.T) {
		a.as(player).InvokeFail(t, arenarpc.ErrInsufficientBalance, "claim",
			player.ScriptHash(), recipient.ScriptHash())
	})
}

func TestArenaClaimReentrancy(t *testing.T) {
	a := newArenaEnv(t)

	probe := neotest.CompileFile(t, a.e.CommitteeHash, claimProbePath,
		path.Join(claimProbePath, "config.yml"))
	a.e.DeployContract(t, probe, a.hash)
	probeInv := a.e.CommitteeInvoker(probe.Hash)

	a.deposit(t, probe.Hash, depositAmount)
	a.host().Invoke(t, depositAmount, "balanceOf", probe.Hash)

	// The reentrant claim finds the balance already zeroed and faults,
	// rolling back the whole transaction: the escrow is left intact.
	probeInv.InvokeFail(t, arenarpc.ErrInsufficientBalance, "grab", true)
	a.host().Invoke(t, depositAmount, "balanceOf", probe.Hash)

	// An honest claim of the same balance goes through exactly once.
	gasBefore := a.e.Chain.GetUtilityTokenBalance(probe.Hash)
	probeInv.Invoke(t, stackitem.Null{}, "grab", false)
	gasAfter := a.e.Chain.GetUtilityTokenBalance(probe.Hash)

	require.EqualValues(t, depositAmount, gasAfter.Int64()-gasBefore.Int64())
	a.host().Invoke(t, 0, "balanceOf", probe.Hash)
	probeInv.InvokeFail(t, arenarpc.ErrInsufficientBalance, "grab", false)
}

func TestArenaDepositRejectsNonGAS(t *testing.T) {
	a := newArenaEnv(t)
	player := a.e.NewAccount(t)

	// NEO is NEP-17 too, but the escrow accepts only GAS. The payment
	// callback aborts, failing the whole transfer.
	neoHash := a.e.NativeHash(t, nativenames.Neo)
	neoInv := a.e.CommitteeInvoker(neoHash)
	neoInv.InvokeFail(t, "ABORT", "transfer", a.e.CommitteeHash, a.hash, 1, player.ScriptHash())
}
