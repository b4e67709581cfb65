package timeslot

import "github.com/studiofit/booking-service/pkg/dbmetrics"

// Reuse the dbmetrics executor interfaces so the repository works both
// with the plain *sql.DB and the metrics-wrapped variant.
type DBExecutor = dbmetrics.DBExecutor
