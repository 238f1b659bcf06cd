// Package tabular holds the ingest-and-transform pipeline for uploaded
// spreadsheets: format detection, CSV/XLSX parsing into a Table, the two
// cleaning operations, column projection, and re-serialization.
//
// Everything here is a pure function of its inputs. Tables are immutable;
// each operation returns a new Table and leaves its argument untouched.
package tabular
