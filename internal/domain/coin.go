package domain

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Coin is an integer token amount in base units.
type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

func (c Coin) String() string {
	return c.Amount + c.Denom
}

// DecCoin is a decimal token amount, used for gas prices.
type DecCoin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

func (c DecCoin) String() string {
	return c.Amount + c.Denom
}

// ParseDecCoin parses strings like "0.01uom".
func ParseDecCoin(s string) (DecCoin, error) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})
	if i <= 0 || i == len(s) {
		return DecCoin{}, fmt.Errorf("invalid decimal coin %q", s)
	}
	c := DecCoin{Amount: s[:i], Denom: s[i:]}
	if _, ok := new(big.Rat).SetString(c.Amount); !ok {
		return DecCoin{}, fmt.Errorf("invalid decimal coin %q", s)
	}
	return c, nil
}

// Fee is the gas limit and total fee attached to a transaction.
type Fee struct {
	Gas    uint64 `json:"gas"`
	Amount []Coin `json:"amount"`
}

// FeePolicy selects how a transaction fee is computed.
type FeePolicy string

const (
	// FeePolicyOracle simulates, pads the gas by OracleGasAdjustment and prices it
	// with the live feemarket gas price.
	FeePolicyOracle FeePolicy = "oracle"
	// FeePolicyAuto simulates, pads the gas by AutoGasAdjustment and prices it
	// with the network's static gas price.
	FeePolicyAuto FeePolicy = "auto"
)

const (
	OracleGasAdjustment = 1.2
	AutoGasAdjustment   = 1.3
)

// AdjustGas pads a simulated gas amount and rounds up.
func AdjustGas(gasUsed uint64, adjustment float64) uint64 {
	return uint64(math.Ceil(float64(gasUsed) * adjustment))
}

// CalculateFee prices a gas limit: amount = ceil(gas * price). The price is
// per gas unit; a decimal price on its own is not a valid fee Coin.
func CalculateFee(gas uint64, price DecCoin) (Fee, error) {
	p, ok := new(big.Rat).SetString(price.Amount)
	if !ok || p.Sign() < 0 {
		return Fee{}, fmt.Errorf("invalid gas price %q", price.String())
	}
	if price.Denom == "" {
		return Fee{}, fmt.Errorf("gas price %q has no denom", price.Amount)
	}

	total := new(big.Rat).Mul(p, new(big.Rat).SetInt(new(big.Int).SetUint64(gas)))
	q, r := new(big.Int).QuoRem(total.Num(), total.Denom(), new(big.Int))
	if r.Sign() > 0 {
		q.Add(q, big.NewInt(1))
	}

	return Fee{
		Gas:    gas,
		Amount: []Coin{{Denom: price.Denom, Amount: q.String()}},
	}, nil
}
