package tests

import (
	"math/rand"
	"path"
	"testing"
	"time"

	arenarpc "github.com/dragonfly-xyz/nottingham-contracts-sub001/rpc/arena"
	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const (
	arenaPath      = "../contracts/arena"
	claimProbePath = "../internal/testcontracts/claimprobe"
)

// arenaEnv is a single-node chain with a deployed arena contract. The
// committee account doubles as the host, the notary key lives off-chain
// only.
type arenaEnv struct {
	e       *neotest.Executor
	hash    util.Uint160
	notary  *keys.PrivateKey
	retirer neotest.Signer
}

func newArenaEnv(t *testing.T) *arenaEnv {
	bc, acc := chain.NewSingle(t)
	e := neotest.NewExecutor(t, bc, acc, acc)

	notary, err := keys.NewPrivateKey()
	require.NoError(t, err)
	retirer := e.NewAccount(t)

	c := neotest.CompileFile(t, e.CommitteeHash, arenaPath, path.Join(arenaPath, "config.yml"))
	e.DeployContract(t, c, []any{e.CommitteeHash, notary.PublicKey().Bytes(), retirer.ScriptHash()})

	return &arenaEnv{
		e:       e,
		hash:    c.Hash,
		notary:  notary,
		retirer: retirer,
	}
}

// host returns an invoker signed by the host (committee) account.
func (a *arenaEnv) host() *neotest.ContractInvoker {
	return a.e.CommitteeInvoker(a.hash)
}

// as returns an invoker signed by the given account.
func (a *arenaEnv) as(signer neotest.Signer) *neotest.ContractInvoker {
	return a.e.NewInvoker(a.hash, signer)
}

// confirmation issues a valid notary confirmation for the player.
func (a *arenaEnv) confirmation(t *testing.T, player util.Uint160, expiry int64, nonce []byte) *arenarpc.Confirmation {
	conf, err := arenarpc.SignConfirmation(a.notary, a.hash, player, expiry, nonce)
	require.NoError(t, err)
	return conf
}

// register admits the player with a fresh nonce and a far-future expiry.
func (a *arenaEnv) register(t *testing.T, player neotest.Signer) {
	expiry := time.Now().Add(24 * time.Hour).UnixMilli()
	conf := a.confirmation(t, player.ScriptHash(), expiry, arenarpc.NewNonce())
	a.as(player).Invoke(t, stackitem.Null{}, "register",
		player.ScriptHash(), expiry, conf.Nonce, conf.Signature)
}

// openSeason opens the season with a freshly generated keypair and returns
// the pair for the later reveal.
func (a *arenaEnv) openSeason(t *testing.T, seasonIndex int) *arenarpc.SeasonKey {
	key, err := arenarpc.NewSeasonKey()
	require.NoError(t, err)
	a.host().Invoke(t, stackitem.Null{}, "newSeason", seasonIndex, key.Public)
	return key
}

// deposit transfers GAS from the committee to the arena, crediting the
// beneficiary's escrow balance.
func (a *arenaEnv) deposit(t *testing.T, beneficiary util.Uint160, amount int64) {
	gasHash := a.e.NativeHash(t, nativenames.Gas)
	gasInv := a.e.CommitteeInvoker(gasHash)
	gasInv.Invoke(t, true, "transfer", a.e.CommitteeHash, a.hash, amount, beneficiary)
}

func randomBytes(n int) []byte {
	a := make([]byte, n)
	rand.Read(a) //nolint:staticcheck // SA1019: rand.Read has been deprecated since Go 1.20
	return a
}
