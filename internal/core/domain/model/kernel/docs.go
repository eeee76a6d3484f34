// Package kernel provides core domain primitives for the rating platform.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Pincode: A value object for 6-digit postal codes identifying shipment endpoints
//   - PincodeInfo: The directory record (city, state, metro flag) behind a pincode
//   - Zone: The geographic pricing bucket resolved from a pincode pair
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for the concurrent quote evaluation paths.
package kernel
