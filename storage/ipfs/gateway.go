package ipfs

import (
	"strings"
)

// GatewayURL is the link under which a gateway serves the object named by
// contentID.
func GatewayURL(gateway, contentID string) string {
	return strings.TrimRight(gateway, "/") + "/ipfs/" + contentID
}

// IPFSPath is the immutable path of an object, the source of a files cp.
func IPFSPath(contentID string) string {
	return "/ipfs/" + contentID
}

// MFSPath is where a copied object is named inside the node's mutable file
// system.
func MFSPath(contentID string) string {
	return "/" + contentID
}
