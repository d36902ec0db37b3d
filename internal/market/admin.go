/*
SPDX-License-Identifier: Apache-2.0
*/

package market

import (
	"fmt"

	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/ledger"
	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/marketerrors"
	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/money"
)

const (
	ContractName    = "nft-marketplace"
	ContractVersion = "1.0.0"

	// RewardTokenReplyTag correlates the reward token deployment with its Reply.
	RewardTokenReplyTag uint64 = 0

	DefaultMinDuration    uint64 = 5 * 60
	DefaultMaxDuration    uint64 = 90 * 24 * 60 * 60
	DefaultSnipeWindow    uint64 = 10 * 60
	DefaultSnipeExtension uint64 = 10 * 60
)

// DefaultMaxRoyalty caps creator royalties unless Instantiate overrides it.
var DefaultMaxRoyalty = money.NewPercent(10)

func (m *Market) instantiate(s ledger.Store, env Env, msg Instantiate) (*Response, error) {
	var existing State
	found, err := ledger.GetJSON(s, ledger.StateKey, &existing)
	if err != nil {
		return nil, err
	}
	if found {
		return nil, marketerrors.ErrAlreadyInitialized
	}
	if env.Caller == "" {
		return nil, fmt.Errorf("%w: missing caller", marketerrors.ErrInvalidAddress)
	}

	cfg := &Config{
		Owner:            env.Caller,
		Denom:            msg.Denom,
		BidMargin:        msg.BidMargin,
		PlatformFee:      msg.PlatformFee,
		GatedPlatformFee: msg.GatedPlatformFee,
		FeeCollector:     msg.FeeCollector,
		FullReward:       msg.FullReward,
		PartialReward:    msg.PartialReward,
		GatedMinOpening:  msg.GatedMinOpening,
		GatedFeeAccrual:  msg.GatedFeeAccrual,
		MaxRoyalty:       DefaultMaxRoyalty,
		MinDuration:      orDefault(msg.MinDuration, DefaultMinDuration),
		MaxDuration:      orDefault(msg.MaxDuration, DefaultMaxDuration),
		SnipeWindow:      orDefault(msg.SnipeWindow, DefaultSnipeWindow),
		SnipeExtension:   orDefault(msg.SnipeExtension, DefaultSnipeExtension),
		MinterIndexer:    msg.MinterIndexer,
		EscrowAccount:    msg.EscrowAccount,
	}
	if cfg.EscrowAccount == "" {
		cfg.EscrowAccount = ContractName
	}
	if msg.MaxRoyalty != nil {
		cfg.MaxRoyalty = *msg.MaxRoyalty
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if !msg.CancellationFee.IsFraction() {
		return nil, fmt.Errorf("%w: cancellation fee %s", marketerrors.ErrInvalidPercentage, msg.CancellationFee)
	}
	if msg.RewardTokenLabel == "" {
		return nil, fmt.Errorf("%w: reward token label is required", marketerrors.ErrInvalidMessage)
	}

	if err := saveConfig(s, cfg); err != nil {
		return nil, err
	}
	if err := ledger.PutJSON(s, ledger.CancellationPolicyKey, &CancellationPolicy{FeePercentage: msg.CancellationFee}); err != nil {
		return nil, err
	}
	if err := ledger.PutJSON(s, ledger.ContractInfoKey, &ContractInfo{Name: ContractName, Version: ContractVersion}); err != nil {
		return nil, err
	}
	state := &State{
		NextAuctionID:   1,
		Phase:           AwaitingRewardToken,
		PendingReplyTag: RewardTokenReplyTag,
	}
	if err := saveState(s, state); err != nil {
		return nil, err
	}

	tag := RewardTokenReplyTag
	return newResponse(msg.action()).
		attr("owner", env.Caller).
		attr("denom", cfg.Denom).
		add(Instruction{Kind: InstantiateRewardToken, Label: msg.RewardTokenLabel, ReplyTag: &tag}), nil
}

func (m *Market) reply(s ledger.Store, env Env, msg Reply) (*Response, error) {
	cfg, err := loadConfig(s)
	if err != nil {
		return nil, err
	}
	if env.Caller != cfg.Owner {
		return nil, marketerrors.ErrUnauthorized
	}
	state, err := loadState(s)
	if err != nil {
		return nil, err
	}
	if state.Phase != AwaitingRewardToken || msg.Tag != state.PendingReplyTag {
		return nil, fmt.Errorf("%w: %d", marketerrors.ErrUnknownReplyTag, msg.Tag)
	}
	if msg.Result.Error != "" {
		return nil, fmt.Errorf("%w: %s", marketerrors.ErrReplyFailed, msg.Result.Error)
	}
	if msg.Result.Address == "" {
		return nil, fmt.Errorf("%w: reward token address missing from reply", marketerrors.ErrInvalidAddress)
	}

	state.RewardToken = msg.Result.Address
	state.Phase = Ready
	if err := saveState(s, state); err != nil {
		return nil, err
	}
	return newResponse(msg.action()).
		attr("tag", msg.Tag).
		attr("reward_token", state.RewardToken), nil
}

func (m *Market) updateConfig(s ledger.Store, env Env, msg UpdateConfig) (*Response, error) {
	cfg, err := loadConfig(s)
	if err != nil {
		return nil, err
	}
	if env.Caller != cfg.Owner {
		return nil, marketerrors.ErrUnauthorized
	}

	if msg.Owner != nil {
		cfg.Owner = *msg.Owner
	}
	if msg.BidMargin != nil {
		cfg.BidMargin = *msg.BidMargin
	}
	if msg.PlatformFee != nil {
		cfg.PlatformFee = *msg.PlatformFee
	}
	if msg.GatedPlatformFee != nil {
		cfg.GatedPlatformFee = *msg.GatedPlatformFee
	}
	if msg.FeeCollector != nil {
		cfg.FeeCollector = *msg.FeeCollector
	}
	if msg.FullReward != nil {
		cfg.FullReward = *msg.FullReward
	}
	if msg.PartialReward != nil {
		cfg.PartialReward = *msg.PartialReward
	}
	if msg.GatedMinOpening != nil {
		cfg.GatedMinOpening = *msg.GatedMinOpening
	}
	if msg.GatedFeeAccrual != nil {
		cfg.GatedFeeAccrual = *msg.GatedFeeAccrual
	}
	if msg.MinterIndexer != nil {
		cfg.MinterIndexer = *msg.MinterIndexer
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if err := saveConfig(s, cfg); err != nil {
		return nil, err
	}
	return newResponse(msg.action()).attr("owner", cfg.Owner), nil
}

func (m *Market) updateCancellationPolicy(s ledger.Store, env Env, msg UpdateCancellationPolicy) (*Response, error) {
	cfg, err := loadConfig(s)
	if err != nil {
		return nil, err
	}
	if env.Caller != cfg.Owner {
		return nil, marketerrors.ErrUnauthorized
	}
	if !msg.FeePercentage.IsFraction() {
		return nil, fmt.Errorf("%w: cancellation fee %s", marketerrors.ErrInvalidPercentage, msg.FeePercentage)
	}
	if err := ledger.PutJSON(s, ledger.CancellationPolicyKey, &CancellationPolicy{FeePercentage: msg.FeePercentage}); err != nil {
		return nil, err
	}
	return newResponse(msg.action()).attr("fee_percentage", msg.FeePercentage), nil
}

func validateConfig(cfg *Config) error {
	if cfg.Owner == "" || cfg.FeeCollector == "" || cfg.EscrowAccount == "" {
		return fmt.Errorf("%w: owner, fee collector and escrow account are required", marketerrors.ErrInvalidAddress)
	}
	if cfg.Denom == "" {
		return fmt.Errorf("%w: denom is required", marketerrors.ErrInvalidMessage)
	}
	percentages := map[string]money.Percent{
		"bid_margin":         cfg.BidMargin,
		"platform_fee":       cfg.PlatformFee,
		"gated_platform_fee": cfg.GatedPlatformFee,
		"full_reward":        cfg.FullReward,
		"partial_reward":     cfg.PartialReward,
		"gated_fee_accrual":  cfg.GatedFeeAccrual,
		"max_royalty":        cfg.MaxRoyalty,
	}
	for name, p := range percentages {
		if !p.IsFraction() {
			return fmt.Errorf("%w: %s %s", marketerrors.ErrInvalidPercentage, name, p)
		}
	}
	// royalty and platform fee are both taken from the gross bid
	if !cfg.PlatformFee.Add(cfg.MaxRoyalty).IsFraction() || !cfg.GatedPlatformFee.Add(cfg.MaxRoyalty).IsFraction() {
		return fmt.Errorf("%w: platform fee plus maximum royalty exceeds 100%%", marketerrors.ErrInvalidPercentage)
	}
	if cfg.GatedMinOpening.IsZero() {
		return fmt.Errorf("%w: gated minimum opening deposit", marketerrors.ErrZeroAmount)
	}
	if cfg.MinDuration == 0 || cfg.MaxDuration < cfg.MinDuration {
		return fmt.Errorf("%w: bounds [%d, %d]", marketerrors.ErrInvalidDuration, cfg.MinDuration, cfg.MaxDuration)
	}
	if cfg.SnipeWindow > cfg.MaxDuration || cfg.SnipeExtension > cfg.MaxDuration {
		return fmt.Errorf("%w: anti-snipe window %d and extension %d must not exceed %d",
			marketerrors.ErrInvalidDuration, cfg.SnipeWindow, cfg.SnipeExtension, cfg.MaxDuration)
	}
	return nil
}

func orDefault(v, def uint64) uint64 {
	if v == 0 {
		return def
	}
	return v
}
