package indexer

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	arenarpc "github.com/dragonfly-xyz/nottingham-contracts-sub001/rpc/arena"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/neorpc"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"go.uber.org/zap"
)

// Listener subscribes to arena contract notifications over a WebSocket RPC
// connection and mirrors them into the Store.
type Listener struct {
	log      *zap.Logger
	store    *Store
	metrics  *Metrics
	contract util.Uint160

	client *rpcclient.WSClient
	reader *arenarpc.ContractReader
}

// NewListener connects to the RPC node and prepares a subscription for the
// given contract.
func NewListener(ctx context.Context, log *zap.Logger, endpoint string, contract util.Uint160, store *Store, metrics *Metrics) (*Listener, error) {
	client, err := rpcclient.NewWS(ctx, endpoint, rpcclient.WSOptions{})
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", endpoint, err)
	}
	if err := client.Init(); err != nil {
		client.Close()
		return nil, fmt.Errorf("init RPC client: %w", err)
	}

	return &Listener{
		log:      log,
		store:    store,
		metrics:  metrics,
		contract: contract,
		client:   client,
		reader:   arenarpc.NewReader(invoker.New(client, nil), contract),
	}, nil
}

// Close terminates the RPC connection.
func (l *Listener) Close() {
	l.client.Close()
}

// Run consumes contract notifications until the context is canceled or the
// connection drops. Notifications that fail to decode or apply are logged and
// counted, but do not stop the loop.
func (l *Listener) Run(ctx context.Context) error {
	ch := make(chan *state.ContainedNotificationEvent, 128)
	subID, err := l.client.ReceiveExecutionNotifications(
		&neorpc.NotificationFilter{Contract: &l.contract}, ch)
	if err != nil {
		return fmt.Errorf("subscribe to notifications: %w", err)
	}
	defer func() {
		_ = l.client.Unsubscribe(subID)
	}()

	l.log.Info("listening for contract notifications",
		zap.Stringer("contract", l.contract))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case n, ok := <-ch:
			if !ok {
				return errors.New("notification channel closed")
			}
			if err := l.apply(ctx, n); err != nil {
				l.metrics.ObserveEventError()
				l.log.Warn("failed to apply notification",
					zap.String("event", n.Name), zap.Error(err))
				continue
			}
			l.metrics.ObserveEvent(n.Name)
		}
	}
}

func (l *Listener) apply(ctx context.Context, n *state.ContainedNotificationEvent) error {
	started := time.Now()
	defer l.metrics.ObserveStore(started)

	switch n.Name {
	case "PlayerRegistered":
		var ev arenarpc.PlayerRegisteredEvent
		if err := ev.FromStackItem(n.Item); err != nil {
			return err
		}
		l.log.Info("player registered", zap.Stringer("player", ev.Player))
		return l.store.MarkRegistered(ctx, address.Uint160ToString(ev.Player))
	case "PlayerRetired":
		var ev arenarpc.PlayerRetiredEvent
		if err := ev.FromStackItem(n.Item); err != nil {
			return err
		}
		l.log.Info("player retired", zap.Stringer("player", ev.Player))
		return l.store.MarkRetired(ctx, address.Uint160ToString(ev.Player))
	case "SeasonOpened":
		var ev arenarpc.SeasonOpenedEvent
		if err := ev.FromStackItem(n.Item); err != nil {
			return err
		}
		index := int(ev.SeasonIndex.Int64())
		l.log.Info("season opened", zap.Int("season", index),
			zap.String("public_key", hex.EncodeToString(ev.PublicKey)))
		return l.store.OpenSeason(ctx, index, ev.PublicKey)
	case "SeasonClosed":
		var ev arenarpc.SeasonClosedEvent
		if err := ev.FromStackItem(n.Item); err != nil {
			return err
		}
		index := int(ev.SeasonIndex.Int64())
		l.log.Info("season closed", zap.Int("season", index))
		return l.store.CloseSeason(ctx, index, ev.PrivateKey)
	case "CodeCommitted":
		var ev arenarpc.CodeCommittedEvent
		if err := ev.FromStackItem(n.Item); err != nil {
			return err
		}
		index := int(ev.SeasonIndex.Int64())
		digest := arenarpc.CodeDigest(ev.Code)
		l.log.Info("code committed", zap.Int("season", index),
			zap.Stringer("player", ev.Player))
		return l.store.PutCommitment(ctx, index, address.Uint160ToString(ev.Player), digest)
	case "RatingsUpdated":
		var ev arenarpc.RatingsUpdatedEvent
		if err := ev.FromStackItem(n.Item); err != nil {
			return err
		}
		return l.applyRatings(ctx, &ev)
	case "Deposit":
		var ev arenarpc.DepositEvent
		if err := ev.FromStackItem(n.Item); err != nil {
			return err
		}
		l.log.Info("deposit", zap.Stringer("player", ev.Player),
			zap.Int64("amount", ev.Amount.Int64()))
		return l.store.AddBalance(ctx, address.Uint160ToString(ev.Player), ev.Amount.Int64())
	case "Claim":
		var ev arenarpc.ClaimEvent
		if err := ev.FromStackItem(n.Item); err != nil {
			return err
		}
		l.log.Info("claim", zap.Stringer("player", ev.Player),
			zap.Stringer("recipient", ev.Recipient),
			zap.Int64("amount", ev.Amount.Int64()))
		return l.store.ZeroBalance(ctx, address.Uint160ToString(ev.Player))
	default:
		l.log.Debug("ignoring unknown notification", zap.String("event", n.Name))
		return nil
	}
}

// applyRatings resolves the new rating values through the contract reader,
// since the notification itself carries only the affected players.
func (l *Listener) applyRatings(ctx context.Context, ev *arenarpc.RatingsUpdatedEvent) error {
	index := int(ev.SeasonIndex.Int64())
	for _, player := range ev.Players {
		record, err := l.reader.GetPlayerRating(ev.SeasonIndex, player)
		if err != nil {
			return fmt.Errorf("fetch rating of %s: %w", address.Uint160ToString(player), err)
		}
		err = l.store.PutRating(ctx, index, address.Uint160ToString(player),
			record.Mu.Int64(), record.Sigma.Int64(),
			record.WinCount.Int64(), record.MatchCount.Int64())
		if err != nil {
			return err
		}
	}
	l.log.Info("ratings updated", zap.Int("season", index),
		zap.Int("players", len(ev.Players)))
	return nil
}
