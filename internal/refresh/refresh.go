// Package refresh runs the fetch-then-integrate update of a profile's
// game list as one cancellable operation.
package refresh

import (
	"context"
	"strconv"

	"github.com/shelfapp/shelf/internal/fetch"
	"github.com/shelfapp/shelf/internal/logger"
	"github.com/shelfapp/shelf/internal/merge"
	"github.com/shelfapp/shelf/internal/model"
)

// Report summarizes one completed refresh.
type Report struct {
	Fetched  int  `json:"fetched"`
	Added    int  `json:"added"`
	UsedHTML bool `json:"used_html"`
	Failover bool `json:"failover"`
}

// Job holds the collaborators for a refresh run.
type Job struct {
	Client *fetch.Client
	Mode   fetch.Mode
	Log    logger.Logger
}

func (j *Job) logger() logger.Logger {
	if j.Log != nil {
		return j.Log
	}
	return logger.Nop()
}

// Run fetches the remote title list for the profile's account and
// folds it into the profile's game list. Cancellation via ctx aborts
// the network call; once the fetch has returned, a cancelled context
// discards the result instead of integrating it. Any failure is
// returned to the caller; the profile is only mutated on success.
func (j *Job) Run(ctx context.Context, p *model.Profile) (*Report, error) {
	log := j.logger()
	target := strconv.FormatInt(p.AccountID64, 10)

	log.Info("refreshing game list",
		logger.String("account", target),
		logger.String("mode", j.Mode.String()))

	result, err := j.Client.Fetch(ctx, target, j.Mode)
	if err != nil {
		log.Warn("refresh fetch failed", logger.Error(err))
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		log.Info("refresh cancelled, discarding fetched list")
		return nil, err
	}

	var ignore model.IgnoreSet
	if !p.BypassIgnoreOnImport {
		ignore = p.IgnoreList
	}

	fetched, added := merge.Integrate(p.GameData, result.Entries, p.OverwriteOnDownload, ignore)

	log.Info("refresh complete",
		logger.Int("fetched", fetched),
		logger.Int("added", added),
		logger.Bool("failover", result.Failover))

	return &Report{
		Fetched:  fetched,
		Added:    added,
		UsedHTML: result.UsedHTML,
		Failover: result.Failover,
	}, nil
}
