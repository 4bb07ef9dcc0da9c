package commands

import (
	"fmt"
	"io"
	"runtime"

	cryptoDomain "github.com/allisson/encrypt/internal/crypto/domain"
)

// RunVersion prints the application version, the scheme parameters blobs are
// produced with and the Go runtime.
func RunVersion(w io.Writer, version string) error {
	_, err := fmt.Fprintf(
		w,
		"app %s\nscheme: %s, hmac-sha256, pbkdf2-sha256 (%d iterations)\n%s %s/%s\n",
		version,
		cryptoDomain.CipherMethod,
		cryptoDomain.PBKDF2Iterations,
		runtime.Version(),
		runtime.GOOS,
		runtime.GOARCH,
	)
	return err
}
