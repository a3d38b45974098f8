package handlers

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/jobmatch/pkg/resume"
)

func TestReadAtMost(t *testing.T) {
	b, err := readAtMost(strings.NewReader("12345"), 5)
	require.NoError(t, err)
	assert.Equal(t, "12345", string(b))

	_, err = readAtMost(strings.NewReader("123456"), 5)
	assert.ErrorIs(t, err, resume.ErrTooLarge)

	_, err = readAtMost(iotest.ErrReader(errors.New("connection reset")), 5)
	require.Error(t, err)
	assert.NotErrorIs(t, err, resume.ErrTooLarge)
}
