package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DefaultOutputFile is the CSV the export writes when no output is configured.
const DefaultOutputFile = "committee_members_with_hierarchy.csv"

// Config holds the settings read from flags, the config file, and the
// environment.
type Config struct {
	// InputDir is the directory scanned for committee_memberships_*.xml
	// files (default: the working directory).
	InputDir string `json:"input_dir" yaml:"input_dir" mapstructure:"input_dir"`

	// Output is the merged CSV path (default committee_members_with_hierarchy.csv).
	Output string `json:"output" yaml:"output" mapstructure:"output" validate:"required"`

	// PreviewRows is the number of rows printed per table preview (default 5).
	PreviewRows int `json:"preview_rows" yaml:"preview_rows" mapstructure:"preview_rows" validate:"gte=0"`

	// SQLitePath, when set, is a database file that receives all three tables.
	SQLitePath string `json:"sqlite_path,omitempty" yaml:"sqlite_path,omitempty" mapstructure:"sqlite_path"`

	// LogLevel is one of debug, info, warn, error (default info).
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level" validate:"oneof=debug info warn error"`
}

// Validate reports the first invalid field of c.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
