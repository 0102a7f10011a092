package constants

// RouteOutcome is the per-document routing decision consumed by the file mover.
type RouteOutcome string

const (
	RouteProcessed RouteOutcome = "PROCESSED"
	RouteDuplicate RouteOutcome = "DUPLICATE"
	RouteError     RouteOutcome = "ERROR"
)

// RowOutcome is the per-candidate reconciliation result.
type RowOutcome string

const (
	RowCreated   RowOutcome = "CREATED"
	RowUpdated   RowOutcome = "UPDATED"
	RowUnchanged RowOutcome = "UNCHANGED"
)
