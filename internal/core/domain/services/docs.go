// Package services holds domain logic that spans aggregates.
//
// The package includes:
//   - DeletionPolicy: the declarative table of cascade, restrict and set-null rules
//     between entity kinds
//   - RemovalPlanner: turns a delete request into an ordered removal plan, or a
//     ConflictError when restricted dependents exist
package services
