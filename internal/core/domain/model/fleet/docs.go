// Package fleet provides the reference entities an administrator bundles into transport
// units: lorries, drivers, assistants and containers, plus the TransportUnit itself.
//
// A transport unit references exactly one lorry, one driver and one container and at most
// one assistant, all by id. A resource may back any number of transport units.
package fleet
