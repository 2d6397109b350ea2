package common

const (
	AppName = "Max Four"
	STDIn   = "STDIN"
)
