package display

// tee fans one frame out to several surfaces.
type tee struct {
	surfaces []Surface
}

// Tee returns a Surface that forwards every call to all of the given
// surfaces in order. The first error stops the fan-out and is returned;
// earlier surfaces have already drawn by then, matching the best-effort
// semantics of a mirrored display.
func Tee(surfaces ...Surface) Surface {
	return &tee{surfaces: surfaces}
}

func (t *tee) Render(lines []string, columns int) error {
	for _, s := range t.surfaces {
		if err := s.Render(lines, columns); err != nil {
			return err
		}
	}
	return nil
}

func (t *tee) Clear() error {
	for _, s := range t.surfaces {
		if err := s.Clear(); err != nil {
			return err
		}
	}
	return nil
}
