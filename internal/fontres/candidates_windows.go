//go:build windows

package fontres

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/windows"
)

// Candidates returns Arial Bold and DejaVu Sans Bold from the Windows Fonts
// known folder. If the folder can't be resolved, %WINDIR%\Fonts is used.
func Candidates() []string {
	dir, err := windows.KnownFolderPath(windows.FOLDERID_Fonts, 0)
	if err != nil || dir == "" {
		dir = filepath.Join(os.Getenv("WINDIR"), "Fonts")
	}
	return []string{
		filepath.Join(dir, "arialbd.ttf"),
		filepath.Join(dir, "DejaVuSans-Bold.ttf"),
	}
}
