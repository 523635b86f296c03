package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB opens a gorm handle that builds SQL without touching a
// database, so the generated statements can be inspected in tests.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(
		postgres.Open("host=localhost user=salon_user dbname=salon_db sslmode=disable"),
		&gorm.Config{
			DryRun:               true,
			DisableAutomaticPing: true,
		},
	)
	require.NoError(t, err)
	return db
}

func TestStaffConflictScanUsesPlainCount(t *testing.T) {
	db := newDryRunDB(t)

	startAt := time.Date(2030, 1, 7, 10, 0, 0, 0, time.UTC)
	endAt := startAt.Add(time.Hour)

	var count int64
	stmt := staffConflictScan(db, 7, startAt, endAt, &count).Statement
	sql := stmt.SQL.String()

	assert.Contains(t, sql, "count(*)")
	assert.Contains(t, sql, "staff_id = ")
	assert.Contains(t, sql, "status <> 'cancelled'")

	// PostgreSQL rejects locking clauses on aggregate queries, so the
	// scan must never carry one.
	assert.NotContains(t, strings.ToUpper(sql), "FOR UPDATE")
	assert.NotContains(t, strings.ToUpper(sql), "FOR SHARE")

	require.Len(t, stmt.Vars, 3)
	assert.Equal(t, uint(7), stmt.Vars[0])
	assert.Equal(t, endAt, stmt.Vars[1])
	assert.Equal(t, startAt, stmt.Vars[2])
}

func TestStaffAllocationLockIsTransactionScoped(t *testing.T) {
	db := newDryRunDB(t)

	stmt := staffAllocationLock(db, 7).Statement
	sql := stmt.SQL.String()

	// xact-scoped advisory lock: released at commit or rollback, never
	// leaks past the allocating transaction.
	assert.Contains(t, sql, "pg_advisory_xact_lock")

	require.Len(t, stmt.Vars, 2)
	assert.Equal(t, staffAllocationLockClass, stmt.Vars[0])
	assert.Equal(t, int32(7), stmt.Vars[1])
}

func TestStaffAllocationLockKeysDifferPerStaff(t *testing.T) {
	db := newDryRunDB(t)

	a := staffAllocationLock(db, 1).Statement.Vars
	b := staffAllocationLock(db, 2).Statement.Vars

	assert.Equal(t, a[0], b[0])
	assert.NotEqual(t, a[1], b[1])
}
