package commands

const (
	_etc = "/usr/local/etc/com.github.whatsapp-sheets-sync"

	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)
