// Package load provides the Load aggregate: one physical shipment within a job.
//
// The package includes:
//   - Load: the aggregate, owning its transport unit reference and status
//   - Status: the load lifecycle (Pending, Assigned, PickedUp, Delivered, Cancelled)
//   - Number: the generated, human-facing load number
//
// Key business rules:
//   - Binding a transport unit makes a load Assigned; clearing it makes the load Pending
//   - Delivered and Cancelled loads never change status through assignment
//   - PickedUp and Delivered are reached only through explicit progress operations
package load
