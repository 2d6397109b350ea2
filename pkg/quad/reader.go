package quad

import (
	"bufio"
	"errors"
	"fmt"
	log "github.com/sirupsen/logrus"
	"io"
	"strconv"
	"strings"
)

var ErrInsufficientInput = errors.New("insufficient input")

// ParseError describes a token which cannot be used as a 32-bit signed decimal value
type ParseError struct {
	Name  string
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse value '%s' from token '%s': %s", e.Name, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Read consumes four whitespace-separated integers in order a, b, c, d.
// Anything after the fourth value is ignored.
func Read(reader io.Reader) (Quad, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanWords)

	var values [4]int32
	for i, name := range Names {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return Quad{}, fmt.Errorf("cannot read value '%s': %w", name, err)
			}
			return Quad{}, fmt.Errorf("cannot read value '%s': %w", name, ErrInsufficientInput)
		}
		value, err := parse(name, scanner.Text())
		if err != nil {
			return Quad{}, err
		}
		log.Debugf("read value '%s' = %d", name, value)
		values[i] = value
	}
	return New(values[0], values[1], values[2], values[3]), nil
}

func ReadString(str string) (Quad, error) {
	return Read(strings.NewReader(str))
}

func parse(name string, token string) (int32, error) {
	value, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &ParseError{Name: name, Token: token, Err: err}
	}
	return int32(value), nil
}
