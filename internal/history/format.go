package history

import (
	"context"
	"strconv"
	"time"

	"stekfinance/internal/ethereum"
	"stekfinance/internal/indexer"
	"stekfinance/internal/resolver"

	"go.uber.org/zap"
)

// DefaultLayout renders full date and 24-hour time the way the ko-KR locale does.
const DefaultLayout = "2006. 1. 2. 15:04:05"

const (
	amountPlaces = 6
	currency     = "ETH"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Resolver . Resolver
type Resolver interface {
	Resolve(ctx context.Context, hash string) (resolver.Record, bool)
}

// FormattedTransaction is a display-ready transaction. Value carries the
// signed amount with its currency, GasPrice and GasUsed are in gwei.
type FormattedTransaction struct {
	BlockNumber  string   `json:"blockNumber"`
	TimeStamp    string   `json:"timeStamp"`
	Hash         string   `json:"hash"`
	From         string   `json:"from"`
	To           string   `json:"to"`
	RawValue     string   `json:"rawValue"`
	IsError      string   `json:"isError"`
	MethodID     string   `json:"methodId"`
	FunctionName string   `json:"functionName"`
	Category     Category `json:"category"`
	Badge        Badge    `json:"badge"`
	Amount       string   `json:"amount"`
	Value        string   `json:"value"`
	GasPrice     string   `json:"gasPrice"`
	GasUsed      string   `json:"gasUsed"`
	Timestamp    string   `json:"timestamp"`
}

type Formatter struct {
	logs     *zap.SugaredLogger
	resolver Resolver
	location *time.Location
	layout   string
}

// NewFormatter builds a formatter rendering timestamps in loc. A nil loc means UTC.
func NewFormatter(logger *zap.SugaredLogger, r Resolver, loc *time.Location) *Formatter {
	if loc == nil {
		loc = time.UTC
	}
	return &Formatter{
		logs:     logger,
		resolver: r,
		location: loc,
		layout:   DefaultLayout,
	}
}

// Format never fails. Values that cannot be converted produce a degraded
// record instead of dropping the transaction.
func (f *Formatter) Format(ctx context.Context, tx indexer.RawTransaction) FormattedTransaction {
	category := Classify(tx)

	out := FormattedTransaction{
		BlockNumber:  tx.BlockNumber,
		TimeStamp:    tx.TimeStamp,
		Hash:         tx.Hash,
		From:         tx.From,
		To:           tx.To,
		RawValue:     tx.Value,
		IsError:      tx.IsError,
		MethodID:     tx.MethodID,
		FunctionName: tx.FunctionName,
		Category:     category,
		Badge:        Describe(tx),
		GasPrice:     gwei(tx.GasPrice),
		GasUsed:      gwei(tx.GasUsed),
		Timestamp:    f.timestamp(tx.TimeStamp),
	}

	value := tx.Value
	if category == Unstake {
		if record, ok := f.resolver.Resolve(ctx, tx.Hash); ok {
			value = record.Value
		}
	}

	sign := "-"
	if category == Unstake {
		sign = "+"
	}

	wei, err := ethereum.ParseInteger(value)
	if err != nil {
		f.logs.Warnw("formatting transaction value failed",
			"hash", tx.Hash,
			"value", value,
			"error", err)
		out.Amount = degradedAmount(category, tx.Value)
	} else {
		out.Amount = sign + ethereum.FormatFixed(wei, ethereum.EtherDecimals, amountPlaces)
	}
	out.Value = out.Amount + " " + currency

	return out
}

func (f *Formatter) timestamp(unix string) string {
	if unix == "" {
		return ""
	}
	sec, err := strconv.ParseInt(unix, 10, 64)
	if err != nil {
		return ""
	}
	return time.Unix(sec, 0).In(f.location).Format(f.layout)
}

func degradedAmount(category Category, raw string) string {
	if category == Unstake {
		return "+" + ethereum.FormatFixed(nil, ethereum.EtherDecimals, amountPlaces)
	}
	wei, err := ethereum.ParseInteger(raw)
	if err != nil {
		return "-" + ethereum.FormatEther(nil)
	}
	return "-" + ethereum.FormatEther(wei)
}

func gwei(raw string) string {
	v, err := ethereum.ParseInteger(raw)
	if err != nil {
		return ethereum.FormatUnits(nil, ethereum.GweiDecimals)
	}
	return ethereum.FormatUnits(v, ethereum.GweiDecimals)
}
