package catalog

import (
	"encoding/base32"
	"strings"
)

// idEncoding is the unpadded RFC 4648 base-32 alphabet the identifier
// scheme uses. Unpadded matters: the shipped corpus snapshot stores
// identifiers in this exact form, and a padded variant would not match
// them byte-for-byte.
var idEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Encode derives the stable catalogue identifier for (pkg, fontEncoding,
// command): the composite string "<pkg>-<fontEncoding>-<command>" with
// every backslash in command replaced by an underscore, encoded with
// idEncoding.
func Encode(pkg, fontEncoding, command string) string {
	composite := pkg + "-" + fontEncoding + "-" + strings.ReplaceAll(command, `\`, "_")
	return idEncoding.EncodeToString([]byte(composite))
}

// Decode reverses Encode: it base32-decodes id, splits the composite on
// its first two hyphens into (package, font encoding, command), and
// restores backslashes in the command from underscores. It returns
// ErrUnknownIdentifier if id is not valid base32 or does not split into
// exactly three components.
func Decode(id string) (pkg, fontEncoding, command string, err error) {
	raw, decodeErr := idEncoding.DecodeString(id)
	if decodeErr != nil {
		return "", "", "", ErrUnknownIdentifier
	}

	parts := strings.SplitN(string(raw), "-", 3)
	if len(parts) != 3 {
		return "", "", "", ErrUnknownIdentifier
	}

	pkg, fontEncoding, commandPart := parts[0], parts[1], parts[2]
	command = strings.ReplaceAll(commandPart, "_", `\`)
	return pkg, fontEncoding, command, nil
}
