//go:build !windows

package locate

// systemVolumes returns the filesystem root; every mount point is reachable
// from it.
func systemVolumes() []string {
	return []string{"/"}
}
