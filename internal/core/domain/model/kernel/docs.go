// Package kernel provides the value objects shared by every eshift aggregate.
//
// The package includes:
//   - UUID: identifiers for aggregates and reference entities
//   - Place: a bounded free-form location (job start and destination)
//   - Weight: a kilogram amount with two decimals, backed by shopspring/decimal
//   - RequiredText / OptionalText: trimming and length checks for text fields
//
// All value objects are immutable and reject their zero value through Validate.
package kernel
