// Package rate contains the ephemeral request/response model of the pricing
// engine: the validated RateRequest a caller submits and the RateQuote
// breakdown the quote aggregator emits per courier, together with the payment
// type and measurement units they are expressed in.
//
// Nothing in this package is persisted; a shipment only records quote data
// once a seller accepts one.
package rate
