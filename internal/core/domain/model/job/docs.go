// Package job provides the Job aggregate: a customer's relocation request from a
// start location to a destination on a given date, spanning one or more loads.
//
// Key business rules:
//   - A job is requested InProgress and ends Completed or Cancelled
//   - Completing a job requires every one of its loads to be Assigned
//   - Locations and date can be edited only while the job is InProgress
//   - Nothing moves a job out of a terminal status
//
// Loads are separate aggregates and reference their job by id; callers pass the
// statuses of a job's loads into Complete and ChangeStatus.
package job
