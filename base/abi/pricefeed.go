package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// PriceFeedABI is the read surface of a chainlink style aggregator proxy.
var PriceFeedABI abi.ABI

var priceFeedABI = `[{"type":"function","name":"latestAnswer","constant":true,"stateMutability":"view","payable":false,"inputs":[],"outputs":[{"type":"int256"}]},{"type":"function","name":"decimals","constant":true,"stateMutability":"view","payable":false,"inputs":[],"outputs":[{"type":"uint8"}]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(priceFeedABI))
	if err != nil {
		panic(err)
	}
	PriceFeedABI = _abi
}
