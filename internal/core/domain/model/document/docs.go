// Package document provides the document-version entity for the docflow
// system. Each order accumulates a monotonically numbered sequence of
// rendered versions; new versions supersede old ones without deleting them,
// and at most one version per order is approved at any time.
package document
