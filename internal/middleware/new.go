package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"financial-assistant/pkg/log"
)

type Middleware struct {
	l              log.Logger
	ratePerMin     int
	clientLimiters *expirable.LRU[string, *rate.Limiter]
}

// New creates the shared middleware set. ratePerMin caps requests per client
// IP on rate-limited routes; zero or negative disables limiting.
func New(l log.Logger, ratePerMin int) Middleware {
	return Middleware{
		l:              l,
		ratePerMin:     ratePerMin,
		clientLimiters: expirable.NewLRU[string, *rate.Limiter](1024, nil, 10*time.Minute),
	}
}
