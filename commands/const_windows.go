package commands

import (
	"path/filepath"

	"golang.org/x/sys/windows"
)

var DEFAULT_CREDENTIALS = filepath.Join(workdir(), ".google", "credentials.json")

func workdir() string {
	programData, err := windows.KnownFolderPath(windows.FOLDERID_ProgramData, windows.KF_FLAG_DEFAULT)
	if err != nil {
		return `C:\whatsapp-sheets-sync`
	}

	return filepath.Join(programData, "whatsapp-sheets-sync")
}
