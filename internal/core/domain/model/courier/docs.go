// Package courier contains the Courier aggregate: the identity and service
// attributes of a shippable courier service.
//
// Couriers carry no pricing of their own; a seller's pricing plan decides
// what each courier charges. The aggregate exists so the quote aggregator can
// filter on activity and leg dedication and break ranking ties on pickup time.
package courier
