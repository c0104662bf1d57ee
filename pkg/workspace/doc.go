/*
Package workspace provides the Workspace Manager, the external owner of the
committed layout mode and the live document list.

The layout engine (pkg/layout) is pure and advisory: it computes geometry and
suggests mode transitions but never applies them. The Manager is the component
that commits: it guards each workspace with a reference-counted lock (plus an
optional distributed lock for multi-replica deployments), runs mutations
against the stored snapshot, persists the result, and emits diffs for
streaming clients.
*/
package workspace
