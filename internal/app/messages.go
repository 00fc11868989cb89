package app

// Messages are custom events sent through the Bubble Tea update loop

// entryDeletedMsg is sent when an entry has been removed and the file saved
type entryDeletedMsg struct {
	command string
	err     error
}
