package order

import (
	"io"

	"QuantumStore/pkg/kit"
)

// Dump writes every stored order as indented JSON.
func Dump(w io.Writer, s Store) error {
	list, err := s.List()
	if err != nil {
		return err
	}
	return kit.WriteJSON(w, list)
}
