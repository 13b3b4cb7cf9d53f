package metrics_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/loyalbox/loyalbox/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Shared across the package; prometheus collectors register globally once.
var testMetrics = metrics.NewMetrics()

// newOfflineDB opens a gorm handle that never reaches a server: the lazy
// sql.Open pool plus DisableAutomaticPing keep the setup connection-free, so
// every statement fails at dial time and still runs the full callback chain.
func newOfflineDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, err := sql.Open("mysql", "loyalbox:loyalbox@tcp(127.0.0.1:1)/loyalbox")
	assert.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               gormlogger.Discard,
	})
	assert.NoError(t, err)
	return db
}

func TestDatabaseMetricsCollector(t *testing.T) {
	t.Run("Every statement is recorded with operation, table and status", func(t *testing.T) {
		db := newOfflineDB(t)

		_, err := metrics.NewDatabaseMetricsCollector(testMetrics, zap.NewNop(), db)
		assert.NoError(t, err)

		before := testutil.ToFloat64(testMetrics.DBQueriesTotal.WithLabelValues("select", "users", "error"))

		var rows []struct{ ID string }
		assert.Error(t, db.Table("users").Find(&rows).Error)

		after := testutil.ToFloat64(testMetrics.DBQueriesTotal.WithLabelValues("select", "users", "error"))
		assert.Equal(t, before+1, after)
	})

	t.Run("Writes land in their own operation bucket", func(t *testing.T) {
		db := newOfflineDB(t)

		_, err := metrics.NewDatabaseMetricsCollector(testMetrics, zap.NewNop(), db)
		assert.NoError(t, err)

		before := testutil.ToFloat64(testMetrics.DBQueriesTotal.WithLabelValues("insert", "users", "error"))

		assert.Error(t, db.Table("users").Create(map[string]interface{}{"id": "u1"}).Error)

		after := testutil.ToFloat64(testMetrics.DBQueriesTotal.WithLabelValues("insert", "users", "error"))
		assert.Equal(t, before+1, after)
	})

	t.Run("Connection pool stats feed the gauges", func(t *testing.T) {
		db := newOfflineDB(t)

		collector, err := metrics.NewDatabaseMetricsCollector(testMetrics, zap.NewNop(), db)
		assert.NoError(t, err)

		collector.Start(time.Hour)
		defer collector.Stop()

		// The initial sample runs synchronously enough to assert on an idle pool.
		assert.Eventually(t, func() bool {
			return testutil.ToFloat64(testMetrics.DBConnectionsInUse) == 0
		}, time.Second, 10*time.Millisecond)
	})
}
