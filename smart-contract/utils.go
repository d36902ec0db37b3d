/*
SPDX-License-Identifier: Apache-2.0
*/

package auction

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/marketerrors"
	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/money"
)

// decodeStrict decodes a JSON object, rejecting unknown fields and trailing data.
func decodeStrict(data string, v interface{}) error {
	decoder := json.NewDecoder(strings.NewReader(data))
	decoder.DisallowUnknownFields()
	if errDecode := decoder.Decode(v); errDecode != nil {
		return fmt.Errorf("%w: %v", marketerrors.ErrInvalidMessage, errDecode)
	}
	if decoder.More() {
		return fmt.Errorf("%w: trailing data", marketerrors.ErrInvalidMessage)
	}
	return nil
}

// parseFunds decodes the coins attached to a transaction, e.g. [{"denom":"uusd","amount":100}].
// An empty string means no funds.
func parseFunds(fundsJSON string) (money.Funds, error) {
	if strings.TrimSpace(fundsJSON) == "" {
		return nil, nil
	}
	var funds money.Funds
	if errDecode := decodeStrict(fundsJSON, &funds); errDecode != nil {
		return nil, fmt.Errorf("could not decode funds: %w", errDecode)
	}
	return funds, nil
}

func parsePercent(s string) (money.Percent, error) {
	p, errParse := money.ParsePercent(s)
	if errParse != nil {
		return money.Percent{}, fmt.Errorf("%w: %v", marketerrors.ErrInvalidPercentage, errParse)
	}
	return p, nil
}
