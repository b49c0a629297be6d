/*
Package chat implements the two-party conversation model on top of the
messages façade.

A conversation between two participants is addressed by a room
identifier derived from their ids. The derivation lives in exactly one
place here; the loading and sending paths both go through it, so both
sides of a conversation always read and write the same room.
*/
package chat

// DeriveRoomID computes the room identifier for the unordered pair of
// participant ids: the two ids sorted lexicographically (plain
// code-point comparison, no locale collation) and joined with an
// underscore. DeriveRoomID(a, b) == DeriveRoomID(b, a) byte for byte,
// which is what lets both participants' clients address the same room
// independently.
func DeriveRoomID(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "_" + b
}
