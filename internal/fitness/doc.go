// Package fitness computes the derived metrics shown on the dashboard.
// Everything here is a pure function of the stored records and "now";
// nothing is persisted.
package fitness
