package utils

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// DescScanning labels the spinner shown while walking the scan root
const DescScanning = "Scanning"

// NewProgressBarTo creates a consistently styled progress bar rendering to w.
//
// Parameters:
//   - total: Total number of items. Use -1 for unknown totals (spinner mode).
//   - description: Text shown before the bar (e.g., DescScanning).
//
// Example:
//
//	bar := utils.NewProgressBarTo(os.Stderr, -1, utils.DescScanning)
//	defer bar.Finish()
func NewProgressBarTo(w io.Writer, total int, description string) *progressbar.ProgressBar {
	opts := []progressbar.Option{
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	}

	if total < 0 {
		// Unknown total: use spinner mode
		opts = append(opts,
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetRenderBlankState(true),
		)
	} else {
		opts = append(opts,
			progressbar.OptionShowIts(),
		)
	}

	return progressbar.NewOptions(total, opts...)
}
