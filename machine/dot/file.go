package dot

import (
	"fmt"
	"os"

	"github.com/YaNeVLAD/StateMachine/machine"
)

// IOError wraps a filesystem failure with the path involved.
type IOError struct {
	Path  string
	Cause error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%v: %v", e.Path, e.Cause)
}

func (e *IOError) Unwrap() error {
	return e.Cause
}

func ReadMealyFile(path string) (*machine.Mealy, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Cause: err}
	}
	defer f.Close()
	return ReadMealy(f)
}

func ReadMooreFile(path string) (*machine.Moore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Cause: err}
	}
	defer f.Close()
	return ReadMoore(f)
}

func ReadRecognizerFile(path string) (*machine.Recognizer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Cause: err}
	}
	defer f.Close()
	return ReadRecognizer(f)
}

func WriteMealyFile(path string, m *machine.Mealy) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Path: path, Cause: err}
	}
	defer f.Close()
	return WriteMealy(f, m)
}

func WriteMooreFile(path string, m *machine.Moore) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Path: path, Cause: err}
	}
	defer f.Close()
	return WriteMoore(f, m)
}

func WriteRecognizerFile(path string, r *machine.Recognizer) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Path: path, Cause: err}
	}
	defer f.Close()
	return WriteRecognizer(f, r)
}
