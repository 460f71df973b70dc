// Package services provides domain services of the moving estimate system.
//
// The package includes:
//   - EstimateCalculator: prices complete draft details against a PricingRules table
//
// The calculator is pure: it holds no state, performs no I/O and returns the
// same price for the same details and rules.
package services
