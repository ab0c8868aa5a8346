// Command arena-dump prints the full public state of a deployed arena
// contract: roles, seasons, commitments, ratings and the entropy
// accumulator.
package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"math/big"
	"strings"

	arenarpc "github.com/dragonfly-xyz/nottingham-contracts-sub001/rpc/arena"
	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contractHash := flag.String("contract", "", "Arena contract address (LE hex)")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *contractHash == "":
		log.Fatal("missing contract address")
	}

	hash, err := util.Uint160DecodeStringLE(strings.TrimPrefix(*contractHash, "0x"))
	if err != nil {
		log.Fatal(fmt.Errorf("invalid contract address: %w", err))
	}

	if err := dump(*neoRPCEndpoint, hash); err != nil {
		log.Fatal(err)
	}
}

func dump(endpoint string, hash util.Uint160) error {
	client, err := rpcclient.New(context.Background(), endpoint, rpcclient.Options{})
	if err != nil {
		return fmt.Errorf("create RPC client: %w", err)
	}
	defer client.Close()

	if err := client.Init(); err != nil {
		return fmt.Errorf("init RPC client: %w", err)
	}

	reader := arenarpc.NewReader(invoker.New(client, nil), hash)

	if err := dumpRoles(reader); err != nil {
		return err
	}
	if err := dumpRandomness(reader); err != nil {
		return err
	}
	return dumpSeasons(reader)
}

func dumpRoles(reader *arenarpc.ContractReader) error {
	version, err := reader.Version()
	if err != nil {
		return fmt.Errorf("get version: %w", err)
	}
	host, err := reader.Host()
	if err != nil {
		return fmt.Errorf("get host: %w", err)
	}
	notary, err := reader.Notary()
	if err != nil {
		return fmt.Errorf("get notary: %w", err)
	}
	retirer, err := reader.Retirer()
	if err != nil {
		return fmt.Errorf("get retirer: %w", err)
	}

	fmt.Printf("version: %s\n", version)
	fmt.Printf("host:    %s\n", address.Uint160ToString(host))
	fmt.Printf("notary:  %s\n", notary.StringCompressed())
	fmt.Printf("retirer: %s\n", address.Uint160ToString(retirer))
	return nil
}

func dumpRandomness(reader *arenarpc.ContractReader) error {
	randao, err := reader.GetRandao()
	if err != nil {
		return fmt.Errorf("get randao: %w", err)
	}
	beacon, err := reader.GetEntropyBeacon()
	if err != nil {
		return fmt.Errorf("get entropy beacon: %w", err)
	}

	fmt.Printf("randao:  %s\n", hex.EncodeToString(randao))
	fmt.Printf("beacon:  %s\n", hex.EncodeToString(beacon))
	return nil
}

func dumpSeasons(reader *arenarpc.ContractReader) error {
	current, err := reader.GetSeason()
	if err != nil {
		return fmt.Errorf("get current season: %w", err)
	}
	if current.Sign() < 0 {
		fmt.Println("current season: none")
	} else {
		fmt.Printf("current season: %s\n", current)
	}

	items, err := reader.IterateSeasonsExpanded(arenarpc.MaxSeasonIndex)
	if err != nil {
		return fmt.Errorf("iterate seasons: %w", err)
	}

	for _, item := range items {
		index, season, err := arenarpc.ParseSeasonItem(item)
		if err != nil {
			return fmt.Errorf("decode season: %w", err)
		}

		fmt.Printf("\nseason %d\n", index)
		fmt.Printf("  public key:  %s\n", hex.EncodeToString(season.PublicKey))
		if len(season.PrivateKey) > 0 {
			fmt.Printf("  private key: %s (closed)\n", hex.EncodeToString(season.PrivateKey))
		} else {
			fmt.Println("  private key: not yet revealed")
		}

		if err := dumpCommitments(reader, index); err != nil {
			return err
		}
		if err := dumpRatings(reader, index); err != nil {
			return err
		}
	}
	return nil
}

func dumpCommitments(reader *arenarpc.ContractReader, index int) error {
	items, err := reader.IterateCommitmentsExpanded(big.NewInt(int64(index)), maxItems)
	if err != nil {
		return fmt.Errorf("iterate commitments of season %d: %w", index, err)
	}

	fmt.Printf("  commitments: %d\n", len(items))
	for _, item := range items {
		player, code, err := arenarpc.ParseCommitmentItem(item)
		if err != nil {
			return fmt.Errorf("decode commitment: %w", err)
		}
		fmt.Printf("    %s %s (%d bytes)\n", address.Uint160ToString(player),
			base58.Encode(arenarpc.CodeDigest(code)), len(code))
	}
	return nil
}

func dumpRatings(reader *arenarpc.ContractReader, index int) error {
	items, err := reader.IterateRatingsExpanded(big.NewInt(int64(index)), maxItems)
	if err != nil {
		return fmt.Errorf("iterate ratings of season %d: %w", index, err)
	}

	fmt.Printf("  ratings: %d\n", len(items))
	for _, item := range items {
		player, record, err := arenarpc.ParseRatingItem(item)
		if err != nil {
			return fmt.Errorf("decode rating: %w", err)
		}
		fmt.Printf("    %s mu=%s sigma=%s wins=%s matches=%s\n",
			address.Uint160ToString(player),
			record.Mu, record.Sigma, record.WinCount, record.MatchCount)
	}
	return nil
}

const maxItems = 10000
