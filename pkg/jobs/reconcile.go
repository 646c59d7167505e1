package jobs

import (
	"context"

	"github.com/agricom-careers/careers-api/pkg/careers_api/services"
	"github.com/agricom-careers/careers-api/pkg/tools"
	"github.com/robfig/cron/v3"
)

// ScheduleNightlyReconcile sets up a cron job that re-runs schema
// reconciliation every night so drift is repaired without operator action.
func ScheduleNightlyReconcile(ctx context.Context, reconciler services.SchemaReconciler) *cron.Cron {
	c := cron.New()
	_, _ = c.AddFunc("@daily", func() {
		tools.Dispatch(context.Background(), "reconcile_schema", func(ctx context.Context) error {
			return reconciler.Reconcile(ctx)
		})
	})
	c.Start()

	go func() {
		<-ctx.Done()
		c.Stop()
	}()
	return c
}
