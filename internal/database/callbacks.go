package database

import (
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"
)

// MetricsRecorder is an interface for recording database metrics
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats sql.DBStats)
}

const queryStartKey = "metrics:query_start_time"

func markStart(db *gorm.DB) {
	db.InstanceSet(queryStartKey, time.Now())
}

func recordAfter(recorder MetricsRecorder, operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		start, ok := db.InstanceGet(queryStartKey)
		if !ok {
			return
		}
		table := db.Statement.Table
		if table == "" {
			table = "unknown"
		}
		err := db.Error
		// a miss is an answer, not a failed query
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = nil
		}
		recorder.RecordDBQuery(operation, table, time.Since(start.(time.Time)), err)
	}
}

// RegisterMetricsCallbacks registers GORM callbacks for metrics collection.
// Row-locking reads go through the query callback like any other select.
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) error {
	cb := db.Callback()

	steps := []error{
		cb.Query().Before("gorm:query").Register("metrics:query_before", markStart),
		cb.Query().After("gorm:query").Register("metrics:query_after", recordAfter(recorder, "select")),
		cb.Create().Before("gorm:create").Register("metrics:create_before", markStart),
		cb.Create().After("gorm:create").Register("metrics:create_after", recordAfter(recorder, "insert")),
		cb.Update().Before("gorm:update").Register("metrics:update_before", markStart),
		cb.Update().After("gorm:update").Register("metrics:update_after", recordAfter(recorder, "update")),
		cb.Delete().Before("gorm:delete").Register("metrics:delete_before", markStart),
		cb.Delete().After("gorm:delete").Register("metrics:delete_after", recordAfter(recorder, "delete")),
	}
	return errors.Join(steps...)
}

// StartDBStatsCollector samples pool stats every interval until done is closed
func StartDBStatsCollector(db *gorm.DB, recorder MetricsRecorder, interval time.Duration) chan struct{} {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sqlDB, err := db.DB()
				if err != nil {
					continue
				}
				recorder.UpdateDBStats(sqlDB.Stats())
			case <-done:
				return
			}
		}
	}()

	return done
}
