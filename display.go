package trackviz

import (
	"github.com/pkg/browser"
)

// Show opens a rendered figure in the system's default viewer.
func Show(path string) error {
	return browser.OpenFile(path)
}
