// Package shipment contains the Shipment aggregate: a seller's order moving
// through the quoting workflow from submission (Created) through quote
// acceptance (Booked) to delivery (Completed).
//
// The aggregate keeps the original rate request so pending shipments can be
// re-quoted, and snapshots the accepted quote at booking so charges are fixed
// at acceptance time regardless of later plan changes.
package shipment
