// Package jobs provides scheduled background tasks of the dispatch service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds precision) and are
// started and stopped together through JobManager:
//
//	rebroadcast := jobs.NewReadyOrderRebroadcastJob(orders, broadcaster, jobs.RebroadcastConfig{}, logger)
//	jobManager := jobs.NewJobManager(logger, rebroadcast)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// ReadyOrderRebroadcastJob runs every minute by default. It lists door-delivery
// orders that are still ready and unassigned after RebroadcastConfig.Age and
// sends each one to nearby couriers again. Failures on single orders are logged.
package jobs
