// Package shipment provides domain entities and business logic for external
// orders in the picking system. It implements the Shipment aggregate root with
// its order lines and the derived aggregate status.
//
// The package includes:
//   - Shipment: The aggregate root holding identity, display number and lines
//   - Line: An immutable order line (SKU, quantity, unit, storage location, zone)
//   - Status: The shipment status derived from the statuses of its tasks
//
// Key business rules:
//   - A shipment must contain at least one line
//   - A line belongs to exactly one task with its full ordered quantity
//   - The shipment status is re-derived after every task transition; it is
//     Confirmed only when every task of the shipment is confirmed
//   - Shipments are never physically removed except by administrative hard-delete
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package shipment
