package api

import (
	"github.com/filecoin-project/go-jsonrpc/auth"
)

const (
	PermRead  auth.Permission = "read" // default
	PermWrite auth.Permission = "write"
	PermSign  auth.Permission = "sign"  // Use wallet keys for signing
	PermAdmin auth.Permission = "admin" // Manage permissions
)

var AllPermissions = []auth.Permission{PermRead, PermWrite, PermSign, PermAdmin}
var DefaultPerms = []auth.Permission{PermRead}

func permissionedProxies(in, out interface{}) {
	outs := GetInternalStructs(out)
	for _, o := range outs {
		auth.PermissionedProxy(AllPermissions, DefaultPerms, in, o)
	}
}

func PermissionedCrowdfundAPI(a Crowdfund) Crowdfund {
	var out CrowdfundStruct
	permissionedProxies(a, &out)
	return &out
}

// PermsUpTo returns every permission up to and including p, so "sign" gives
// read, write and sign. It returns nil for an unknown permission.
func PermsUpTo(p auth.Permission) []auth.Permission {
	for i, ap := range AllPermissions {
		if ap == p {
			return AllPermissions[:i+1]
		}
	}
	return nil
}
