package batch

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

var spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

// startSpinner redraws a progress line on w until the returned function is
// called.
func startSpinner(w io.Writer, processed *atomic.Uint64, total uint64) func() {
	done := make(chan struct{})
	var wg sync.WaitGroup

	wg.Go(func() {
		s := spinner.New()
		s.Spinner = spinner.Dot
		s.Style = spinnerStyle
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				fmt.Fprintf(w, "\r✓ Compared %d/%d images.\n", processed.Load(), total)
				return
			case <-ticker.C:
				s, _ = s.Update(spinner.TickMsg{})
				fmt.Fprintf(w, "\r%s Comparing images %d/%d...", s.View(), processed.Load(), total)
			}
		}
	})

	return sync.OnceFunc(func() {
		close(done)
		wg.Wait()
	})
}
