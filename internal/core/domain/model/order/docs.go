// Package order provides the sales order domain model.
//
// The package includes:
//   - Order: the aggregate root carrying customer, status, derived total and
//     soft-delete marker, plus the lifecycle guard (CanUpdate, CanDelete)
//   - Item: a product line referencing its order by id
//   - Status: NEW, OPEN, CLOSED, CANCELED
//   - Field rules (ValidateLine and friends) shared by constructors and
//     commands
//
// Key business rules:
//   - customerID and productID are required; quantity > 0; price >= 0
//   - CLOSED and CANCELED orders reject changes to fields and items
//   - CLOSED orders cannot be deleted, CANCELED orders can
//   - the total is never set by clients; it is recomputed from the items
package order
