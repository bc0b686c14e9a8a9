package model

import "time"

// Template is a config file kept in the template folder so it can be copied
// into new projects.
type Template struct {
	Name        string    `json:"name" yaml:"name"`
	Source      string    `json:"source" yaml:"source"`
	Description string    `json:"description" yaml:"description"`
	File        string    `json:"file" yaml:"file"`
	Checksum    string    `json:"checksum" yaml:"checksum"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
}

// TemplateStatus compares a template with the file it was taken from.
type TemplateStatus int

const (
	TemplateStatusUnknown TemplateStatus = iota
	TemplateStatusSynced
	TemplateStatusDrifted
	TemplateStatusSourceMissing
)

func (s TemplateStatus) String() string {
	switch s {
	case TemplateStatusSynced:
		return "synced"
	case TemplateStatusDrifted:
		return "modified"
	case TemplateStatusSourceMissing:
		return "source missing"
	default:
		return "unknown"
	}
}
