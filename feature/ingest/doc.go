// Package ingest moves networks and reports across the process boundary:
// it decodes extracted JSON network files into the model, enforcing the
// point-based versus line-based element invariant up front, and writes
// adjustment reports and adjusted networks back out as indented JSON.
package ingest
