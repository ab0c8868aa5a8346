/*
Package arena implements the Nottingham Arena contract: a season-based
competition ledger.

Players are admitted by presenting a confirmation signed by a fixed notary
key (replay-protected by a globally unique nonce and an expiry timestamp).
During a season, identified by an externally chosen index, players commit
encrypted strategy code against the season's BLS12-381 public key; when the
host closes the season it must reveal the matching private key, which makes
all commitments of that season decryptable at once. The host records skill
ratings per player per season, a designated retirer can permanently exclude
players, and GAS sent to the contract is held in escrow until claimed.

Season keys are expected to be derived off-chain from the contract's
randomness accumulator, a sha256 chain over the network randomness and
arbitrary caller-supplied entropy (see Jiggle), so no single party fully
controls the seed of an upcoming season.

# Contract notifications

PlayerRegistered notification. Emitted when a confirmation is consumed:

	PlayerRegistered
	  - name: player
	    type: Hash160
	  - name: nonce
	    type: ByteArray

CodeCommitted notification. Emitted on every accepted commitment, carrying
the full ciphertext for off-chain archival:

	CodeCommitted
	  - name: seasonIndex
	    type: Integer
	  - name: player
	    type: Hash160
	  - name: code
	    type: ByteArray

SeasonOpened and SeasonClosed notifications. Emitted on season lifecycle
transitions:

	SeasonOpened
	  - name: seasonIndex
	    type: Integer
	  - name: publicKey
	    type: ByteArray

	SeasonClosed
	  - name: seasonIndex
	    type: Integer
	  - name: privateKey
	    type: ByteArray

RatingsUpdated notification. Emitted on every rate batch:

	RatingsUpdated
	  - name: seasonIndex
	    type: Integer
	  - name: players
	    type: Array

PlayerRetired notification. Emitted when a player is excluded for the first
time:

	PlayerRetired
	  - name: player
	    type: Hash160

Deposit and Claim notifications. Emitted on escrow movements:

	Deposit
	  - name: from
	    type: Hash160
	  - name: player
	    type: Hash160
	  - name: amount
	    type: Integer

	Claim
	  - name: player
	    type: Hash160
	  - name: recipient
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package arena

/*
Contract storage model.

Current conventions:
 <idx>: 2-byte big-endian season index
 <player>: 20-byte script hash of a player account

# Summary
Key-value storage format:
 - 'h' -> interop.Hash160
   script hash of the host account
 - 'e' -> interop.Hash160
   script hash of the retirer account
 - 'n' -> interop.PublicKey
   compressed secp256r1 public key of the notary
 - 'c' -> int
   index of the currently Open season, absent when none is Open
 - 's<idx>' -> std.Serialize(Season)
   season keypair record; PrivateKey is empty until the season closes
 - 'x<nonce>' -> 1
   consumed confirmation nonces
 - 'p<player>' -> 1
   players that passed registration
 - 'd<player>' -> 1
   retired players
 - 'b<player>' -> int
   claimable escrow balance, GAS fractions
 - 'k<idx><player>' -> []byte
   committed ciphertext
 - 'r<idx><player>' -> std.Serialize(RatingRecord)
   host-asserted rating values
 - 'm' -> []byte
   32-byte randomness accumulator

# Seasons
Season records are never removed and an index is never reused: a Closed
season stays in storage as the immutable record of its keypair, commitments
and ratings.

# Randomness
The accumulator under 'm' is seeded at deploy and advanced by every Jiggle
call; the fold order is part of the result.
*/
