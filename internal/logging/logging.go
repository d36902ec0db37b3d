/*
SPDX-License-Identifier: Apache-2.0
*/

// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/hyperledger/fabric-samples/auction/nft-marketplace/chaincode-go/internal/config"
)

// TimestampFormat is ISO 8601 with the zone offset.
const TimestampFormat = "2006-01-02T15:04:05Z07:00"

// New returns a logger writing to out at the configured level and format ("json" or "text").
func New(cfg config.LogConfig, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	switch cfg.Format {
	case "", "json":
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: TimestampFormat})
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{TimestampFormat: TimestampFormat, FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}
	return logger, nil
}
