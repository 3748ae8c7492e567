// Package task provides domain entities and business logic for the bounded
// units of collection work in the picking system. It implements the Task
// aggregate root with lifecycle management and role-based transitions.
//
// The package includes:
//   - Task: The aggregate root carrying zone scope, task lines, operator
//     assignments and lifecycle timestamps
//   - TaskLine: The join of a task and a shipment line with collected and
//     confirmed quantities
//   - Status: A state machine enforcing the Unassigned -> Assigned ->
//     AwaitingCheck -> Confirmed workflow
//   - Role: The closed enumeration of operator roles (collector, checker,
//     dictator) with their scoring weights
//
// Key business rules:
//   - A task never splits a shipment line's quantity; each task line carries
//     the line's full ordered quantity
//   - Lifecycle transitions are reserved for the recorded collector/checker
//   - Release wipes collected progress, administrative reset preserves it
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package task
