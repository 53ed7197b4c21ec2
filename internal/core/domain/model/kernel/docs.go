// Package kernel provides the shared domain primitives of the sales order
// service. Today that is the UUID value object used as the identity of orders
// and items; it is immutable and safe for concurrent use.
package kernel
