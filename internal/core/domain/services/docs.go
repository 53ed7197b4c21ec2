// Package services provides domain services of the sales order model.
//
// The package includes:
//   - TotalsCalculator: derives an order's total from its current items
package services
