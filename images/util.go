package images

import (
	"crypto/md5"
	"fmt"

	"gocv.io/x/gocv"
)

// ComputeMatChecksum generates a deterministic checksum of the pixel bytes of a Mat.
//
// Arguments:
// - mat: The Mat to compute checksum for.
//
// Returns:
// - A hex-encoded MD5 checksum string, "empty" for an empty Mat.
//
// Example:
//
// ```go
//
//	checksum := ComputeMatChecksum(img.Mat())
//	fmt.Printf("image checksum: %s\n", checksum)
//
// ```
func ComputeMatChecksum(mat gocv.Mat) string {
	if mat.Empty() {
		return "empty"
	}

	hash := md5.New()
	hash.Write(mat.ToBytes())
	return fmt.Sprintf("%x", hash.Sum(nil))
}

// Checksum returns the checksum of the image's pixel bytes, "empty" when absent.
func (i Image) Checksum() string {
	if i.IsAbsent() {
		return "empty"
	}
	return ComputeMatChecksum(i.mat)
}
