// Package services contains domain services: operations that span more than
// one aggregate and therefore do not belong to any single aggregate root.
//
// CustodyTransferService implements the custody handoff, the one transition
// that touches a closing route log, its successor, and the vehicle at once.
package services
