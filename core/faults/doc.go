// Package faults defines the error taxonomy shared across the sync pipeline.
//
// Row, batch and store level failures are expected conditions: they are
// wrapped around one of the sentinels here, aggregated by the caller, and
// never abort a larger run. Setup failures (cannot connect, cannot
// authenticate) are surfaced immediately and propagate to the caller.
//
// # Usage
//
//	if err := table.AddRow(row); errors.Is(err, faults.ErrValidation) {
//	    // reject the row, keep the run going
//	}
//
//	return faults.Transient("ftp server busy on %s", name)
package faults
