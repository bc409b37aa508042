// Package kernel provides the value objects shared by the delivery date domain.
//
// The package includes:
//   - UUID: identifier for orders and their shipments
//   - ManagedDate: an immutable point in time with calendar-day arithmetic
//
// Both are immutable and safe for concurrent use. Their zero values are
// invalid and report themselves through Validate.
package kernel
