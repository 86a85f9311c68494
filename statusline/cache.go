package statusline

import (
	"context"

	"github.com/grovetools/p4mux/p4"
	"github.com/sirupsen/logrus"
)

// Querier is the data source behind the status line. *p4.Client implements it.
type Querier interface {
	Opened(ctx context.Context, path string) (p4.OpenCounts, error)
	Status(ctx context.Context, flags []string, path string) (p4.StatusCounts, error)
	LoggedIn(ctx context.Context, path string) bool
}

// queryCache memoizes each query for one render. A failed query is
// remembered too, so it is never retried within the same render.
type queryCache struct {
	querier     Querier
	path        string
	statusFlags []string
	logger      *logrus.Entry

	loginDone bool
	loggedIn  bool

	openDone bool
	open     *p4.OpenCounts

	statusDone bool
	status     *p4.StatusCounts
}

func (c *queryCache) isLoggedIn(ctx context.Context) bool {
	if !c.loginDone {
		c.loggedIn = c.querier.LoggedIn(ctx, c.path)
		c.loginDone = true
	}
	return c.loggedIn
}

// openCounts returns the opened-file counts, or nil if they are unavailable.
func (c *queryCache) openCounts(ctx context.Context) *p4.OpenCounts {
	if c.open != nil || c.openDone {
		return c.open
	}
	c.openDone = true

	counts, err := c.querier.Opened(ctx, c.path)
	if err != nil {
		c.logger.WithError(err).Warn("Failed to query opened files")
		return nil
	}
	c.open = &counts
	return c.open
}

// statusCounts returns the status snapshot, or nil if it is unavailable. A
// snapshot also fills the opened-file cache when that is still empty.
func (c *queryCache) statusCounts(ctx context.Context) *p4.StatusCounts {
	if c.statusDone {
		return c.status
	}
	c.statusDone = true

	counts, err := c.querier.Status(ctx, c.statusFlags, c.path)
	if err != nil {
		c.logger.WithError(err).Warn("Failed to query workspace status")
		return nil
	}
	c.status = &counts
	if c.open == nil {
		open := counts.Open
		c.open = &open
	}
	return c.status
}
