package output

import (
	"errors"
	"fmt"
	"strings"

	"github.com/TheAugDev/smart-steps-to-wealth/internal/domain"
)

// ErrUnsupportedFormat is returned when no formatter matches the requested name.
var ErrUnsupportedFormat = errors.New("unsupported format")

// GenerateReport resolves the named formatter and writes its output to a
// timestamped report file. The "all" pseudo-format writes the console and
// detailed CSV reports together.
func GenerateReport(results *domain.ScenarioComparison, format string) error {
	if f := GetFormatterByName(format); f != nil {
		ext := f.Name()
		if ext == "console" {
			ext = "txt"
		}
		if strings.Contains(ext, "csv") {
			ext = "csv"
		}
		_, err := WriteFormatted(f, results, ext)
		return err
	}
	if NormalizeFormatName(format) == "all" {
		if _, err := WriteFormatted(ConsoleFormatter{}, results, "txt"); err != nil {
			return err
		}
		_, err := WriteFormatted(CSVDetailedExporter{}, results, "csv")
		return err
	}
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
