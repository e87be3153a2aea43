// Package database handles the connection to the authoritative MySQL
// database that owns location and catalog state.
//
// It wraps GORM with the pool settings and timeouts the jobs rely on.
// Connect fails fast: a database that cannot be reached or authenticated
// at startup aborts the unit rather than deferring the failure into a
// scheduled run.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
