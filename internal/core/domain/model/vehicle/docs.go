// Package vehicle contains the Vehicle aggregate root and its availability
// state machine.
//
// A Vehicle owns at most one active route log by reference: Status and the
// active-log pointer move together, and every custody transition goes through
// the aggregate methods (StartCustody, HandOver, EndCustody) so the pair can
// never be observed in an inconsistent combination. Manual status changes
// (maintenance, transferred out of fleet) are a separate, restricted path
// that is only open while no custody is active.
package vehicle
