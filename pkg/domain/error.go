package domain

import (
	"errors"
	"fmt"
)

type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}

	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

// Message pesan tanpa error asal, buat ditampilkan ke pengguna.
func (e *Error) Message() string {
	return e.msg
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func NewErrorf(code error, format string, a ...interface{}) error {
	return WrapErrorf(nil, code, format, a...)
}

func (e *Error) Code() error {
	return e.code
}

// CodeOf returns the classification code of err, or ErrInternal if err was not produced by WrapErrorf.
func CodeOf(err error) error {
	if err == nil {
		return nil
	}
	var derr *Error
	if !errors.As(err, &derr) {
		return ErrInternal
	}
	return derr.Code()
}

func IsCode(err error, code error) bool {
	return err != nil && CodeOf(err) == code
}

var (
	// ErrDataNotFound input file (graph, hospital features, config) hilang atau gak bisa dibaca
	ErrDataNotFound = errors.New("data not found")
	// ErrGeocodeFailure lokasi tidak bisa di-resolve ke koordinat
	ErrGeocodeFailure = errors.New("geocode failure")
	// ErrNoHospitalsAvailable hospital feature set / tag kosong
	ErrNoHospitalsAvailable = errors.New("no hospitals available")
	// ErrNoPathExists start & destination tidak terhubung di road network
	ErrNoPathExists = errors.New("no path exists")
	// ErrBadParamInput will throw if the given config or coordinate is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrInternal unclassified failure
	ErrInternal = errors.New("internal error")
)

// ExitCode maps an error classification to a process exit status for the cmd tools.
func ExitCode(err error) int {
	switch CodeOf(err) {
	case nil:
		return 0
	case ErrDataNotFound:
		return 2
	case ErrGeocodeFailure:
		return 3
	case ErrNoHospitalsAvailable:
		return 4
	case ErrNoPathExists:
		return 5
	case ErrBadParamInput:
		return 64
	default:
		return 1
	}
}
