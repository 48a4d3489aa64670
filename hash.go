package cast

// fnvSeed and fnvPrime are the 64-bit FNV-1a constants §4.4 specifies.
// hash/fnv.New64a() implements the identical algorithm but does not
// expose its seed/prime, and a four-line loop reads more plainly here
// than wrapping a hash.Hash64 for a single-shot value.
const (
	fnvSeed  uint64 = 0xCBF29CE484222325
	fnvPrime uint64 = 0x00000100000001B3
)

// Hash computes the 64-bit FNV-1a hash of name's raw UTF-8 bytes. This is
// the canonical way to derive a Node's Hash field from a name (§4.4);
// the seed and prime never change and there is no salt.
//
// Hash("") == 0xCBF29CE484222325 and Hash("a") == 0xAF63DC4C8601EC8C,
// stable across platforms (§8).
func Hash(name string) uint64 {
	h := fnvSeed
	for i := 0; i < len(name); i++ {
		h ^= uint64(name[i])
		h *= fnvPrime
	}
	return h
}
