/*
Package observability exposes Prometheus metrics for the Easel engine.

A Metrics value owns a private registry and doubles as an event sink for
workspace managers, so wiring it up is a one-liner:

	metrics := observability.NewMetrics()
	mgr := workspace.NewManager(store, workspace.WithEventSink(metrics.HandleEvent))
	http.Handle("/metrics", metrics.Handler())
*/
package observability
