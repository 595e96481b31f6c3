// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the asset management system. It implements
// complex business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - CodeAllocator: A domain service that generates unique per-category asset codes
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
