//go:build windows

package locate

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"
)

// systemVolumes returns the drive roots (A:\ .. Z:\) reported by
// GetLogicalDrives, in letter order.
func systemVolumes() []string {
	mask, err := windows.GetLogicalDrives()
	if err != nil {
		logrus.WithError(err).Warn("failed to enumerate logical drives")
		return nil
	}
	var drives []string
	for i := 0; i < 26; i++ {
		if mask&(1<<uint(i)) != 0 {
			drives = append(drives, string(rune('A'+i))+`:\`)
		}
	}
	return drives
}
