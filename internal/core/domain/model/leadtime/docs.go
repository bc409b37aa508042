// Package leadtime holds the per-state lead-time tables and the shipping
// speed that selects between them.
//
// Two tables are defined, one per speed:
//
//	         MA  CT  NY  ME  NH  other
//	regular   4   4   4   5   5    6
//	rush      2   2   3   -   3    4
//
// The tables are built once at package initialization and are read-only
// afterwards, so concurrent lookups need no locking.
package leadtime
