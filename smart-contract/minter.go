/*
SPDX-License-Identifier: Apache-2.0
*/

package auction

import (
	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/sirupsen/logrus"

	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/ledger"
	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/market"
)

// MinterResponse is what asset and indexer chaincodes answer to a minter query.
type MinterResponse struct {
	Minter string `json:"minter"`
}

// chaincodeMinters resolves minters by querying other chaincodes on the same channel:
// first the asset chaincode itself, then the configured indexer.
type chaincodeMinters struct {
	stub shim.ChaincodeStubInterface
	log  logrus.FieldLogger
}

func newChaincodeMinters(stub shim.ChaincodeStubInterface, log logrus.FieldLogger) *chaincodeMinters {
	return &chaincodeMinters{stub: stub, log: log}
}

func (c *chaincodeMinters) Minter(assetContract, assetID string) (string, error) {
	minter, errDirect := c.query(assetContract, "Minter", assetID)
	if errDirect == nil && minter != "" {
		return minter, nil
	}

	indexer, errIndexer := c.indexer()
	if errIndexer != nil {
		return "", errIndexer
	}
	if indexer == "" {
		if errDirect != nil {
			return "", errDirect
		}
		return "", nil
	}
	c.log.WithFields(logrus.Fields{
		"asset_contract": assetContract,
		"asset_id":       assetID,
		"indexer":        indexer,
	}).Debug("asset chaincode did not name a minter, asking the indexer")
	return c.query(indexer, "GetMinter", assetContract, assetID)
}

// query asks chaincode for a minter with fn.
func (c *chaincodeMinters) query(chaincode string, fn string, args ...string) (string, error) {
	var minterResponse MinterResponse
	if errQuery := queryChaincode(c.stub, chaincode, fn, &minterResponse, args...); errQuery != nil {
		return "", errQuery
	}
	return minterResponse.Minter, nil
}

// indexer reads the configured indexer chaincode name from the world state.
func (c *chaincodeMinters) indexer() (string, error) {
	var cfg market.Config
	if _, errConfig := ledger.GetJSON(c.stub, ledger.ConfigKey, &cfg); errConfig != nil {
		return "", errConfig
	}
	return cfg.MinterIndexer, nil
}
