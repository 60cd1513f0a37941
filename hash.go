package rfcuuid

import (
	"crypto/md5"
	"crypto/sha1"
	"hash"
)

// NewHash returns a name-based UUID: h is fed the namespace bytes followed by
// name, the first 16 bytes of the digest are kept, and the version and
// RFC 4122 variant bits are stamped in.
func NewHash(h hash.Hash, space UUID, name []byte, version Version) UUID {
	h.Reset()
	h.Write(space[:])
	h.Write(name)
	sum := h.Sum(nil)

	var b [16]byte
	copy(b[:], sum)
	b[6] = (b[6] & 0x0f) | byte(version)<<4
	b[8] = (b[8] & 0x3f) | 0x80
	return build(b)
}

// NewV3 returns a Version 3 (MD5) UUID for name within space.
// The same space and name always produce the same UUID.
func NewV3(space UUID, name string) UUID {
	return NewHash(md5.New(), space, []byte(name), VersionNameBasedMD5)
}

// NewV5 returns a Version 5 (SHA-1) UUID for name within space.
// The same space and name always produce the same UUID.
func NewV5(space UUID, name string) UUID {
	return NewHash(sha1.New(), space, []byte(name), VersionNameBasedSHA1)
}

// build constructs a UUID from a fully laid out 16-byte buffer.
func build(b [16]byte) UUID {
	return fromFields(decodeFields(b[:]))
}
