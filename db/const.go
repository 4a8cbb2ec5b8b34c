package db

const (
	defaultMaxConns = 10
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"
)

// DefaultPageSize bounds history listings when the caller gives no count.
const DefaultPageSize = 50
