package config

import (
	"bufio"
	"errors"
	"io"

	"github.com/stigoleg/nosleep/internal/util"
)

// ReadMinutes reads one line from r and parses it as a positive number of minutes.
func ReadMinutes(r io.Reader) (int, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, err
	}
	return util.ParseMinutes(line)
}
