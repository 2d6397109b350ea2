package fmtx

import (
	"encoding/json"
	"fmt"
	"gopkg.in/yaml.v3"
)

const (
	// None skips printing output of the commands
	None string = "none"

	// Text prints the command result value only
	Text string = "text"

	// Table prints output of the commands as human-readable tables
	Table string = "table"

	// YML prints output of the commands in YML format
	YML string = "yml"

	// JSON prints output of the commands in JSON format
	JSON string = "json"
)

func MarshalJSON(i any) (string, error) {
	bytes, err := json.MarshalIndent(i, "", "  ")
	if err != nil {
		return "", fmt.Errorf("cannot convert object '%v' to JSON: %w", i, err)
	}
	return string(bytes), nil
}

func MarshalYML(i any) (string, error) {
	bytes, err := yaml.Marshal(i)
	if err != nil {
		return "", fmt.Errorf("cannot convert object '%v' to YML: %w", i, err)
	}
	return string(bytes), nil
}

type TextMarshaler interface {
	MarshalText() string
}

func MarshalText(value any) string {
	marshaller, ok := value.(TextMarshaler)
	if ok {
		return marshaller.MarshalText()
	}
	return fmt.Sprintf("%v", value)
}
