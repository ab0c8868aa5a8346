// Package deploy provides a programmatic deployment routine for the
// Nottingham Arena contract, for use by operator tooling and CI.
package deploy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dragonfly-xyz/nottingham-contracts-sub001/common"
	arenarpc "github.com/dragonfly-xyz/nottingham-contracts-sub001/rpc/arena"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups the blockchain services required for deployment.
type Blockchain interface {
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract
	// by its address. It returns an error with 'Unknown contract'
	// substring if the requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// Prm groups the parameters of Deploy.
type Prm struct {
	// Writes progress into the log. Defaults to a no-op logger.
	Logger *zap.Logger

	// Particular Neo blockchain instance to be used.
	Blockchain Blockchain

	// Account funding and signing the deployment transaction.
	LocalAccount *wallet.Account

	// Compiled arena contract.
	NEF      nef.File
	Manifest manifest.Manifest

	// Role bindings passed to the contract constructor.
	Host    util.Uint160
	Notary  *keys.PublicKey
	Retirer util.Uint160
}

// Deploy deploys the arena contract with the given role configuration and
// returns its address. If the contract with the expected address already
// exists on the chain, Deploy logs this and succeeds without sending a
// transaction, so it is safe to re-run.
func Deploy(ctx context.Context, prm Prm) (util.Uint160, error) {
	l := prm.Logger
	if l == nil {
		l = zap.NewNop()
	}
	if prm.Blockchain == nil || prm.LocalAccount == nil {
		return util.Uint160{}, errors.New("missing blockchain or account")
	}
	if prm.Notary == nil {
		return util.Uint160{}, errors.New("missing notary public key")
	}

	sender := prm.LocalAccount.ScriptHash()
	expected := state.CreateContractHash(sender, prm.NEF.Checksum, prm.Manifest.Name)
	l = l.With(zap.Stringer("contract", expected))

	cs, err := prm.Blockchain.GetContractStateByHash(expected)
	if err != nil && !strings.Contains(err.Error(), "Unknown contract") {
		return util.Uint160{}, fmt.Errorf("read contract state: %w", err)
	}
	if cs != nil {
		l.Info("arena contract is already deployed, skipping")
		return expected, nil
	}

	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("init actor: %w", err)
	}

	l.Info("deploying arena contract",
		zap.Stringer("host", prm.Host),
		zap.Stringer("retirer", prm.Retirer),
		zap.String("notary", prm.Notary.StringCompressed()),
	)

	data := []any{prm.Host, prm.Notary.Bytes(), prm.Retirer}
	res, err := act.Wait(management.New(act).Deploy(&prm.NEF, &prm.Manifest, data))
	if err != nil {
		return util.Uint160{}, fmt.Errorf("deploy contract: %w", err)
	}
	if res.VMState != vmstate.Halt {
		return util.Uint160{}, fmt.Errorf("deployment transaction faulted: %s", res.FaultException)
	}

	l.Info("arena contract deployed successfully")
	return expected, nil
}

// Update updates the code of an already deployed arena contract through its
// update method. Host witness is required, so the local account must be the
// host. The contract itself checks that the versions allow the update.
func Update(ctx context.Context, prm Prm) error {
	l := prm.Logger
	if l == nil {
		l = zap.NewNop()
	}
	if prm.Blockchain == nil || prm.LocalAccount == nil {
		return errors.New("missing blockchain or account")
	}

	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return fmt.Errorf("init actor: %w", err)
	}

	sender := prm.LocalAccount.ScriptHash()
	hash := state.CreateContractHash(sender, prm.NEF.Checksum, prm.Manifest.Name)

	nefBytes, err := prm.NEF.Bytes()
	if err != nil {
		return fmt.Errorf("encode NEF: %w", err)
	}
	manifestBytes, err := json.Marshal(prm.Manifest)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	l.Info("updating arena contract", zap.Stringer("contract", hash),
		zap.Int("version", common.Version))

	res, err := act.Wait(arenarpc.New(act, hash).Update(nefBytes, manifestBytes, nil))
	if err != nil {
		return fmt.Errorf("update contract: %w", err)
	}
	if res.VMState != vmstate.Halt {
		return fmt.Errorf("update transaction faulted: %s", res.FaultException)
	}

	l.Info("arena contract updated successfully")
	return nil
}
