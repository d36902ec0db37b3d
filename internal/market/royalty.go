/*
SPDX-License-Identifier: Apache-2.0
*/

package market

import (
	"fmt"

	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/ledger"
	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/marketerrors"
)

// updateRoyalty sets the royalty the caller earns on resales of assets it minted.
func (m *Market) updateRoyalty(s ledger.Store, env Env, msg UpdateRoyalty) (*Response, error) {
	cfg, err := loadConfig(s)
	if err != nil {
		return nil, err
	}
	if !msg.FeePercentage.IsFraction() || msg.FeePercentage.GreaterThan(cfg.MaxRoyalty) {
		return nil, fmt.Errorf("%w: royalty %s exceeds maximum %s", marketerrors.ErrInvalidPercentage, msg.FeePercentage, cfg.MaxRoyalty)
	}
	royalty := &Royalty{FeePercentage: msg.FeePercentage, Recipient: msg.Recipient}
	if royalty.Recipient == "" {
		royalty.Recipient = env.Caller
	}
	if err := ledger.PutJSON(s, ledger.RoyaltyKey(env.Caller), royalty); err != nil {
		return nil, err
	}
	return newResponse(msg.action()).
		attr("creator", env.Caller).
		attr("fee_percentage", royalty.FeePercentage).
		attr("recipient", royalty.Recipient), nil
}
