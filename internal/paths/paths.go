package paths

import (
	"os"
	"path/filepath"
)

const (
	AppDirName      = "ctmicons"
	ConfigFileName  = "ctmicons-config.json"
	HistoryFileName = "history.db"
	DirPerm         = 0755
	FilePerm        = 0644
)

// WriteFile writes data to path via a temporary sibling file + rename, so
// an existing file is replaced in one step and never left half-written.
// Unlike MkdirAll-style helpers it does not create the parent directory:
// a missing directory is reported as an error.
func WriteFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// DataDir returns the platform-specific data directory for ctmicons:
//   - Windows: %APPDATA%\ctmicons
//   - Unix:    ~/.config/ctmicons
//
// Falls back to os.TempDir()/ctmicons if neither is available.
func DataDir() string {
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, AppDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), AppDirName)
	}
	return filepath.Join(home, ".config", AppDirName)
}

// HistoryPath returns the location of the render history database.
func HistoryPath() string {
	return filepath.Join(DataDir(), HistoryFileName)
}
