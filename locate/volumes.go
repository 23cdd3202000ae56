package locate

// VolumeLister enumerates the root volumes a scan may start from.
type VolumeLister interface {
	Volumes() []string
}

// SystemVolumes lists the volumes mounted on the host. It never fails: a
// restricted enumeration API yields an empty list.
type SystemVolumes struct{}

// Volumes implements VolumeLister.
func (SystemVolumes) Volumes() []string {
	return systemVolumes()
}

// StaticVolumes is a fixed, ordered volume list, used when volumes are
// configured explicitly.
type StaticVolumes []string

// Volumes implements VolumeLister.
func (s StaticVolumes) Volumes() []string {
	return append([]string(nil), s...)
}

// NewVolumeLister picks the configured list when there is one.
func NewVolumeLister(configured []string) VolumeLister {
	if len(configured) > 0 {
		return StaticVolumes(configured)
	}
	return SystemVolumes{}
}
