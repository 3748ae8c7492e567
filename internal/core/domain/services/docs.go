// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the picking system. It
// implements complex business workflows that don't naturally belong to a
// single aggregate root.
//
// The package includes:
//   - WarehouseClassifier: maps storage-location codes to warehouse zones
//   - TaskSplitter: partitions a shipment's lines into bounded, zone-scoped tasks
//   - PerformanceCalculator: derives per-task, per-role performance records
//     from persisted task timestamps
//   - RankCalculator: turns aggregate points into 1-10 decile-percentile ranks
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design principles.
package services
