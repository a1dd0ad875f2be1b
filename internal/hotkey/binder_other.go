//go:build !windows

package hotkey

type osBinder struct{}

func (osBinder) bind(Chord) (binding, error) {
	return nil, ErrUnsupported
}
