package fault

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf_Classification(t *testing.T) {
	t.Parallel()

	_, parseErr := strconv.Atoi("not-a-number")

	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"canceled", context.Canceled, Interrupted},
		{"deadline", context.DeadlineExceeded, Timeout},
		{"not exist", os.ErrNotExist, NotFound},
		{"permission", os.ErrPermission, PermissionDenied},
		{"exists", os.ErrExist, AlreadyExists},
		{"refused", syscall.ECONNREFUSED, ConnectionRefused},
		{"reset", syscall.ECONNRESET, ConnectionReset},
		{"pipe", syscall.EPIPE, ConnectionReset},
		{"parse", parseErr, ParseError},
		{"eof", io.EOF, IO},
		{"plain", errors.New("whatever"), Other},
		{"nil", nil, Other},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, KindOf(tc.err))
		})
	}
}

func TestKindOf_WrappedErrors(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch config: %w", os.ErrNotExist)
	assert.Equal(t, NotFound, KindOf(err))
}

func TestKindOf_FaultReportsOwnKind(t *testing.T) {
	t.Parallel()

	f := New(ResourceExhausted, "busy")
	assert.Equal(t, ResourceExhausted, KindOf(f))
	assert.Equal(t, ResourceExhausted, KindOf(fmt.Errorf("outer: %w", f)))
}

func TestFromErr(t *testing.T) {
	t.Parallel()

	assert.Nil(t, FromErr(nil))

	f := New(Timeout, "late")
	assert.Same(t, f, FromErr(f), "faults pass through untouched")

	foreign := errors.New("disk on fire")
	converted := FromErr(foreign)
	require.NotNil(t, converted)
	assert.Equal(t, Other, converted.Kind())
	assert.Equal(t, "disk on fire", converted.Message())
	assert.True(t, errors.Is(converted, foreign), "cause stays reachable via Unwrap")
}

func TestHasKind(t *testing.T) {
	t.Parallel()

	inner := New(NotFound, "row missing")
	outer := inner.WithContext("loading account").WithKind(IO)

	assert.True(t, HasKind(outer, IO))
	assert.True(t, HasKind(outer, NotFound), "inner kinds are found through the chain")
	assert.False(t, HasKind(outer, Timeout))
	assert.False(t, HasKind(nil, NotFound))
}

func TestErrorsIsThroughChain(t *testing.T) {
	t.Parallel()

	cause := FromErr(context.DeadlineExceeded)
	wrapped := cause.WithContext("waiting for replica")

	assert.True(t, errors.Is(wrapped, context.DeadlineExceeded))
}
