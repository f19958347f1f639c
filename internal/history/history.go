package history

import (
	"context"

	"stekfinance/internal/indexer"
)

//counterfeiter:generate -o fake -fake-name Source . Source
type Source interface {
	Recent(ctx context.Context, address string) indexer.Page
}

// History is the formatted transaction list of an account, most recent first.
// Unavailable is set when the explorer could not be reached.
type History struct {
	Transactions []FormattedTransaction `json:"transactions"`
	Unavailable  bool                   `json:"unavailable"`
}

type Service struct {
	source    Source
	formatter *Formatter
}

func NewService(source Source, formatter *Formatter) *Service {
	return &Service{
		source:    source,
		formatter: formatter,
	}
}

// Recent formats transactions one at a time in source order.
func (s *Service) Recent(ctx context.Context, address string) History {
	page := s.source.Recent(ctx, address)

	formatted := make([]FormattedTransaction, 0, len(page.Transactions))
	for _, tx := range page.Transactions {
		formatted = append(formatted, s.formatter.Format(ctx, tx))
	}

	return History{
		Transactions: formatted,
		Unavailable:  page.Unavailable,
	}
}
