package db

import (
	"fmt"
)

// BuildDSN builds a mysql data source name.
func BuildDSN(host string, port int, username, password, dbname, args string) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s", username, password, host, port, dbname, args)
}
