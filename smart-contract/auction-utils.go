/*
SPDX-License-Identifier: Apache-2.0
*/

package auction

import (
	"encoding/json"
	"fmt"

	"github.com/golang/protobuf/ptypes"
	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"

	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/market"
)

// ResponseEventPrefix prefixes the name of the event carrying an operation's response.
const ResponseEventPrefix = "marketplace."

// newMarket binds the marketplace to the transaction's world state.
func (s *SmartContract) newMarket(ctx contractapi.TransactionContextInterface) *market.Market {
	stub := ctx.GetStub()
	return market.New(stub,
		market.WithMinterResolver(newChaincodeMinters(stub, s.logger())),
		market.WithLogger(s.logger().WithField("channel", stub.GetChannelID())),
	)
}

// submittingClientID returns the identity of the client that submitted the transaction.
func submittingClientID(ctx contractapi.TransactionContextInterface) (string, error) {
	clientID, errClientID := ctx.GetClientIdentity().GetID()
	if errClientID != nil {
		return "", fmt.Errorf("failed to get client identity: %v", errClientID)
	}
	return clientID, nil
}

// transactionTime returns the transaction timestamp in unix seconds. Every endorser sees the same value.
func transactionTime(ctx contractapi.TransactionContextInterface) (uint64, error) {
	timestamp, errTimestamp := ctx.GetStub().GetTxTimestamp()
	if errTimestamp != nil {
		return 0, fmt.Errorf("failed to get transaction timestamp: %v", errTimestamp)
	}
	txTime, errConvert := ptypes.Timestamp(timestamp)
	if errConvert != nil {
		return 0, fmt.Errorf("invalid transaction timestamp: %v", errConvert)
	}
	if txTime.Unix() < 0 {
		return 0, fmt.Errorf("transaction timestamp %v predates the epoch", txTime)
	}
	return uint64(txTime.Unix()), nil
}

// environment collects what the host attests for this transaction.
func environment(ctx contractapi.TransactionContextInterface, fundsJSON string) (market.Env, error) {
	clientID, errClientID := submittingClientID(ctx)
	if errClientID != nil {
		return market.Env{}, errClientID
	}
	now, errNow := transactionTime(ctx)
	if errNow != nil {
		return market.Env{}, errNow
	}
	funds, errFunds := parseFunds(fundsJSON)
	if errFunds != nil {
		return market.Env{}, errFunds
	}
	return market.Env{
		TxID:   ctx.GetStub().GetTxID(),
		Now:    now,
		Caller: clientID,
		Funds:  funds,
	}, nil
}

// execute runs msg as one marketplace operation on behalf of the submitting client.
func (s *SmartContract) execute(ctx contractapi.TransactionContextInterface, msg market.Msg, fundsJSON string) (string, error) {
	env, errEnv := environment(ctx, fundsJSON)
	if errEnv != nil {
		return "", errEnv
	}
	return s.run(ctx, env, msg)
}

// run executes msg in env and announces its response in an event.
func (s *SmartContract) run(ctx contractapi.TransactionContextInterface, env market.Env, msg market.Msg) (string, error) {
	action := market.Action(msg)
	res, errExecute := s.newMarket(ctx).Execute(env, msg)
	if errExecute != nil {
		return "", fmt.Errorf("could not %s: %w", action, errExecute)
	}

	resBin, errMarshal := json.Marshal(res)
	if errMarshal != nil {
		return "", fmt.Errorf("could not encode the %s response: %v", action, errMarshal)
	}
	if errEvent := setResponseEvent(ctx, action, resBin); errEvent != nil {
		return "", fmt.Errorf("could not set the %s event: %v", action, errEvent)
	}
	return string(resBin), nil
}

// setResponseEvent publishes the response so that off-chain executors can carry out its instructions
func setResponseEvent(ctx contractapi.TransactionContextInterface, action string, resBin []byte) error {
	if len(resBin) == 0 {
		return fmt.Errorf("response cannot be empty")
	}
	return ctx.GetStub().SetEvent(ResponseEventPrefix+action, resBin)
}

// queryResult encodes a query result the way every query of this contract returns it.
func queryResult(v interface{}, errQuery error, what string) (string, error) {
	if errQuery != nil {
		return "", fmt.Errorf("could not get %s: %w", what, errQuery)
	}
	resultBin, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("could not encode %s: %v", what, err)
	}
	return string(resultBin), nil
}

// queryChaincode invokes fn on another chaincode of the channel and decodes its JSON answer into out.
func queryChaincode(stub shim.ChaincodeStubInterface, chaincode string, fn string, out interface{}, args ...string) error {
	if chaincode == "" {
		return fmt.Errorf("no chaincode to ask for %s", fn)
	}
	invokeArgs := [][]byte{[]byte(fn)}
	for _, arg := range args {
		invokeArgs = append(invokeArgs, []byte(arg))
	}
	response := stub.InvokeChaincode(chaincode, invokeArgs, "")
	if response.Status != shim.OK {
		return fmt.Errorf("%s %s failed with status %d: %s", chaincode, fn, response.Status, response.Message)
	}
	if errDecode := json.Unmarshal(response.Payload, out); errDecode != nil {
		return fmt.Errorf("could not decode %s %s response: %v", chaincode, fn, errDecode)
	}
	return nil
}
