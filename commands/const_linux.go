package commands

const (
	_etc = "/usr/local/etc/whatsapp-sheets-sync"

	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)
