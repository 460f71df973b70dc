// Package order provides the registered moving order, the aggregate persisted
// once a customer completes the wizard.
//
// Key business rules:
//   - An order is created only from complete draft details and a quoted price
//   - The details and price are an immutable snapshot of what the customer confirmed
//   - Each order carries an idempotency key so a resubmitted completion maps to
//     the same stored order
package order
