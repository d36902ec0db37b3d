/*
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/sirupsen/logrus"

	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/config"
	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/logging"
	auction "github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/smart-contract"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}
	log, err := logging.New(cfg.Log, os.Stdout)
	if err != nil {
		logrus.Fatalf("error setting up logger: %v", err)
	}

	marketplaceChaincode, err := contractapi.NewChaincode(auction.NewSmartContract(log))
	if err != nil {
		log.WithError(err).Fatal("error creating marketplace chaincode")
	}

	if cfg.Chaincode.ServerAddress == "" {
		log.Info("starting marketplace chaincode")
		if err := marketplaceChaincode.Start(); err != nil {
			log.WithError(err).Fatal("error starting marketplace chaincode")
		}
		return
	}

	tlsProps, err := tlsProperties(cfg.Chaincode.TLS)
	if err != nil {
		log.WithError(err).Fatal("error loading TLS material")
	}
	server := &shim.ChaincodeServer{
		CCID:     cfg.Chaincode.ID,
		Address:  cfg.Chaincode.ServerAddress,
		CC:       marketplaceChaincode,
		TLSProps: tlsProps,
	}
	log.WithFields(logrus.Fields{
		"ccid":    cfg.Chaincode.ID,
		"address": cfg.Chaincode.ServerAddress,
		"tls":     !cfg.Chaincode.TLS.Disabled,
	}).Info("starting marketplace chaincode server")
	if err := server.Start(); err != nil {
		log.WithError(err).Fatal("error starting marketplace chaincode server")
	}
}

func tlsProperties(cfg config.TLSConfig) (shim.TLSProperties, error) {
	if cfg.Disabled {
		return shim.TLSProperties{Disabled: true}, nil
	}
	key, err := os.ReadFile(cfg.KeyFile)
	if err != nil {
		return shim.TLSProperties{}, fmt.Errorf("failed to read TLS key: %w", err)
	}
	cert, err := os.ReadFile(cfg.CertFile)
	if err != nil {
		return shim.TLSProperties{}, fmt.Errorf("failed to read TLS certificate: %w", err)
	}
	var clientCACerts []byte
	if cfg.ClientCAFile != "" {
		if clientCACerts, err = os.ReadFile(cfg.ClientCAFile); err != nil {
			return shim.TLSProperties{}, fmt.Errorf("failed to read client CA certificate: %w", err)
		}
	}
	return shim.TLSProperties{Key: key, Cert: cert, ClientCACerts: clientCACerts}, nil
}
