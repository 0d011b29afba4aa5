// Package codec provides structured-clone-style snapshots of the runtime
// layer's collections and buffers, encoded with msgpack.
//
// Snapshots are value copies: decoding always builds a fresh, independent
// instance, never an alias of the source. Map and set snapshots are
// encoded as ordered pair/member lists so that insertion order, which is
// part of the collection contract, survives the round trip.
package codec
