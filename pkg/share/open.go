package share

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open hands the URL to the OS default handler and does not wait for it;
// nothing is read back from the share target.
func Open(u string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", u).Start()
	case "linux":
		return exec.Command("xdg-open", u).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", u).Start()
	default:
		return fmt.Errorf("share: no opener for %s", runtime.GOOS)
	}
}
