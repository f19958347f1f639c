package indexer

import (
	"context"

	"go.uber.org/zap"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TxLister . TxLister
type TxLister interface {
	TxList(ctx context.Context, address string) ([]RawTransaction, error)
}

// Source is the fail-open view over the explorer used by the history pipeline.
type Source struct {
	logs   *zap.SugaredLogger
	lister TxLister
}

func NewSource(logger *zap.SugaredLogger, lister TxLister) *Source {
	return &Source{
		logs:   logger,
		lister: lister,
	}
}

// Recent never fails: upstream errors yield an empty page flagged Unavailable.
func (s *Source) Recent(ctx context.Context, address string) Page {
	if address == "" {
		return Page{Transactions: []RawTransaction{}}
	}

	txs, err := s.lister.TxList(ctx, address)
	if err != nil {
		s.logs.Warnw("fetching transactions failed, serving empty history",
			"address", address,
			"error", err)
		return Page{Transactions: []RawTransaction{}, Unavailable: true}
	}

	if len(txs) > PageSize {
		txs = txs[:PageSize]
	}
	if txs == nil {
		txs = []RawTransaction{}
	}

	s.logs.Debugw("transactions fetched", "address", address, "count", len(txs))
	return Page{Transactions: txs}
}
