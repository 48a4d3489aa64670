package cast

import "golang.org/x/text/unicode/norm"

// IsNormalizedName reports whether name is already in Unicode NFC form.
//
// Cast never normalizes string property bytes in place — doing so would
// change the on-wire bytes and break the round-trip law (§8) for any
// document holding an already-non-NFC name. This is advisory only:
// Hash (§4.4) hashes whatever raw bytes it is given, so two equivalent
// names that differ only in normalization form hash differently and
// will miss each other on a hash-keyed lookup (TryChildByHash and
// friends). Callers that mint new names and want them to compare
// consistently across platforms should normalize before calling Hash,
// the same reasoning multimap.FromString applies to its lookup keys.
func IsNormalizedName(name string) bool {
	return norm.NFC.IsNormalString(name)
}
