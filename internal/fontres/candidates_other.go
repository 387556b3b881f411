//go:build !windows

package fontres

// Candidates returns the fixed system font paths tried before the builtin
// fallback: Arial as shipped on macOS, then DejaVu Sans Bold on Linux.
func Candidates() []string {
	return []string{
		"/System/Library/Fonts/Arial.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	}
}
