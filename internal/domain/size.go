package domain

import "fmt"

// VMSize is the T-shirt size of a requested VM.
type VMSize string

const (
	SizeS  VMSize = "S"
	SizeM  VMSize = "M"
	SizeL  VMSize = "L"
	SizeXL VMSize = "XL"
)

// SizeSpec is the fixed CPU/RAM/disk tuple behind a VMSize.
type SizeSpec struct {
	CPUCores int `json:"cpu_cores"`
	MemoryGB int `json:"memory_gb"`
	DiskGB   int `json:"disk_gb"`
}

var sizeSpecs = map[VMSize]SizeSpec{
	SizeS:  {CPUCores: 2, MemoryGB: 4, DiskGB: 50},
	SizeM:  {CPUCores: 4, MemoryGB: 8, DiskGB: 100},
	SizeL:  {CPUCores: 8, MemoryGB: 16, DiskGB: 200},
	SizeXL: {CPUCores: 16, MemoryGB: 32, DiskGB: 500},
}

// ParseSize validates a size string.
func ParseSize(raw string) (VMSize, error) {
	size := VMSize(raw)
	if _, ok := sizeSpecs[size]; !ok {
		return "", fmt.Errorf("unknown vm size %q (want S, M, L or XL)", raw)
	}
	return size, nil
}

// Spec returns the resource tuple for the size.
func (s VMSize) Spec() SizeSpec {
	return sizeSpecs[s]
}

// Valid reports whether the size is one of the known values.
func (s VMSize) Valid() bool {
	_, ok := sizeSpecs[s]
	return ok
}
