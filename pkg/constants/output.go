package constants

const (
	OutputBaseFolder = "output"

	TmpDirectoryName = "tmp"
)
