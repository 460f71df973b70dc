// Package kernel provides the shared value objects of the moving estimate domain:
// UUID identifiers for orders and sessions, and Price for estimate amounts.
// Both are immutable and reject their zero values in Validate.
package kernel
