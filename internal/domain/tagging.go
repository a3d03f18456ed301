package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// TagMode is unset until configured; unset behaves as enabled.
type TagMode string

const (
	TagModeUnset    TagMode = ""
	TagModeEnabled  TagMode = "enabled"
	TagModeDisabled TagMode = "disabled"
)

func ParseTagMode(raw string) (TagMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return TagModeUnset, nil
	case "enabled", "on":
		return TagModeEnabled, nil
	case "disabled", "off":
		return TagModeDisabled, nil
	default:
		return TagModeUnset, fmt.Errorf("%w: %q", ErrInvalidTagMode, raw)
	}
}

// TagModeFromNoTag maps the legacy boolean "no tag" switch onto a TagMode.
func TagModeFromNoTag(raw string) (TagMode, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return TagModeUnset, nil
	}

	noTag, err := strconv.ParseBool(trimmed)
	if err != nil {
		return TagModeUnset, fmt.Errorf("%w: no-tag value %q", ErrInvalidTagMode, raw)
	}
	if noTag {
		return TagModeDisabled, nil
	}

	return TagModeEnabled, nil
}

func (m TagMode) Valid() bool {
	switch m {
	case TagModeUnset, TagModeEnabled, TagModeDisabled:
		return true
	default:
		return false
	}
}

func (m TagMode) Enabled() bool {
	return m != TagModeDisabled
}

func (m TagMode) String() string {
	if m == TagModeUnset {
		return "unset (enabled)"
	}

	return string(m)
}
