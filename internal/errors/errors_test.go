package errors

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_KeepsCause(t *testing.T) {
	err := Wrap(io.EOF, "read phone row")

	assert.True(t, Is(err, io.EOF))
	assert.Equal(t, "read phone row: EOF", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWrap_KeepsCause")
}

func TestNilPassthrough(t *testing.T) {
	assert.NoError(t, Wrap(nil, "unused"))
	assert.NoError(t, WithStack(nil))
}

type codeError struct{ code int }

func (e *codeError) Error() string { return fmt.Sprintf("code %d", e.code) }

func TestAs_FindsWrappedType(t *testing.T) {
	err := WithStack(Wrap(&codeError{code: 7}, "outer"))

	var target *codeError
	assert.True(t, As(err, &target))
	assert.Equal(t, 7, target.code)
	assert.EqualError(t, Errorf("phone %d", 3), "phone 3")
	assert.EqualError(t, New("plain"), "plain")
}
