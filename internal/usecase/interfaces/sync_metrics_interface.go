package interfaces

// ISyncMetrics records the outcome of every order synchronizer request.
// outcome is one of "fulfilled", "rejected" or "stale".
type ISyncMetrics interface {
	ObserveRequest(kind string, outcome string)
}
