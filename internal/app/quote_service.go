package app

import (
	"math/rand/v2"

	"bodyprogress/internal/domain"
)

// QuoteService picks motivational quotes.
type QuoteService struct {
	quotes []domain.Quote
	pick   func(n int) int
}

// NewQuoteService creates a QuoteService over the fixed quote set.
func NewQuoteService() *QuoteService {
	return &QuoteService{quotes: domain.Quotes, pick: rand.IntN}
}

// Initial returns the quote shown before the first pick.
func (s *QuoteService) Initial() domain.Quote {
	return domain.InitialQuote
}

// Random returns a uniformly chosen quote.
func (s *QuoteService) Random() domain.Quote {
	return s.quotes[s.pick(len(s.quotes))]
}
