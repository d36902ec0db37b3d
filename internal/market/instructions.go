/*
SPDX-License-Identifier: Apache-2.0
*/

package market

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"

	"golang.org/x/crypto/sha3"

	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/money"
)

// InstructionKind names a follow-up action for an external service.
type InstructionKind string

const (
	TransferAsset          InstructionKind = "transfer_asset"
	MintReward             InstructionKind = "mint_reward_token"
	BurnReward             InstructionKind = "burn_reward_token"
	TransferCurrency       InstructionKind = "transfer_currency"
	InstantiateRewardToken InstructionKind = "instantiate_reward_token"
)

// Instruction is emitted by an operation and executed by the asset, token or currency service.
// The marketplace never waits for it; results come back through Reply when ReplyTag is set.
type Instruction struct {
	Kind      InstructionKind `json:"kind"`
	Contract  string          `json:"contract,omitempty"`
	Recipient string          `json:"recipient,omitempty"`
	AssetID   string          `json:"asset_id,omitempty"`
	Amount    money.Amount    `json:"amount,omitempty"`
	Denom     string          `json:"denom,omitempty"`
	Label     string          `json:"label,omitempty"`
	ReplyTag  *uint64         `json:"reply_tag,omitempty"`
}

// Attribute is a key/value pair describing what an operation did.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Response is the committed result of one operation.
type Response struct {
	Action       string        `json:"action"`
	Attributes   []Attribute   `json:"attributes"`
	Instructions []Instruction `json:"instructions"`
	Digest       string        `json:"digest"`
}

func newResponse(action string) *Response {
	return &Response{
		Action:       action,
		Attributes:   []Attribute{},
		Instructions: []Instruction{},
	}
}

func (r *Response) attr(key string, value interface{}) *Response {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case uint64:
		s = strconv.FormatUint(v, 10)
	case fmt.Stringer:
		s = v.String()
	default:
		s = fmt.Sprint(v)
	}
	r.Attributes = append(r.Attributes, Attribute{Key: key, Value: s})
	return r
}

func (r *Response) add(instr Instruction) *Response {
	r.Instructions = append(r.Instructions, instr)
	return r
}

// Attribute returns the value of the first attribute named key.
func (r *Response) Attribute(key string) (string, bool) {
	for _, a := range r.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Instructions of one kind, in emission order.
func (r *Response) InstructionsOf(kind InstructionKind) []Instruction {
	var out []Instruction
	for _, instr := range r.Instructions {
		if instr.Kind == kind {
			out = append(out, instr)
		}
	}
	return out
}

// seal computes the digest executors use to deduplicate instruction batches.
// It is SHAKE-256 over the tx id and the canonical JSON of the instructions.
func (r *Response) seal(txID string) error {
	payload, err := json.Marshal(r.Instructions)
	if err != nil {
		return fmt.Errorf("failed to encode instructions: %w", err)
	}
	shake := sha3.NewShake256()
	for _, data := range [][]byte{[]byte(txID), []byte(r.Action), payload} {
		if _, err := shake.Write(data); err != nil {
			return fmt.Errorf("failed to write data to SHAKE: %w", err)
		}
	}
	digest := make([]byte, 32)
	if _, err := shake.Read(digest); err != nil {
		return fmt.Errorf("failed to read data from SHAKE: %w", err)
	}
	r.Digest = hex.EncodeToString(digest)
	return nil
}

func transferAsset(contract, recipient, assetID string) Instruction {
	return Instruction{Kind: TransferAsset, Contract: contract, Recipient: recipient, AssetID: assetID}
}

func mintReward(token, recipient string, amount money.Amount) Instruction {
	return Instruction{Kind: MintReward, Contract: token, Recipient: recipient, Amount: amount}
}

func burnReward(token string, amount money.Amount) Instruction {
	return Instruction{Kind: BurnReward, Contract: token, Amount: amount}
}

func transferCurrency(recipient string, coin money.Coin) Instruction {
	return Instruction{Kind: TransferCurrency, Recipient: recipient, Amount: coin.Amount, Denom: coin.Denom}
}
