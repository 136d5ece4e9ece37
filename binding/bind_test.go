// Copyright (c) 2024 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binding

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	werrors "github.com/talc-lang/nback/errors"
)

type libraryMap map[string]uintptr

func (m libraryMap) Func(symbol string) (uintptr, error) {
	if addr, found := m[symbol]; found {
		return addr, nil
	}
	return 0, xerrors.Errorf("undefined symbol: %s", symbol)
}

func supportLibrary() libraryMap {
	return libraryMap{
		"list_rc_inc":             0x1000,
		"list_rc_inc_n":           0x1010,
		"list_rc_dec":             0x1020,
		"list_rc_eq":              0x1030,
		"list_rc_compare_wrapper": 0x1040,
	}
}

func TestBindSupport(t *testing.T) {
	funcs, err := BindSupport(supportLibrary(), "list_rc")
	require.NoError(t, err)

	require.Equal(t, uintptr(0x1000), funcs.Inc)
	require.Equal(t, uintptr(0x1010), funcs.IncN)
	require.Equal(t, uintptr(0x1020), funcs.Dec)
	require.Equal(t, uintptr(0x1030), funcs.Eq)
	require.Equal(t, uintptr(0x1040), funcs.Compare)
}

func TestBindSupportMissing(t *testing.T) {
	lib := supportLibrary()
	delete(lib, "list_rc_compare_wrapper")

	_, err := BindSupport(lib, "list_rc")
	require.Error(t, err)
	require.Contains(t, err.Error(), `"list_rc_compare_wrapper"`)

	var resolve werrors.ResolveError
	require.True(t, xerrors.As(err, &resolve))
	require.Equal(t, "list_rc_compare_wrapper", resolve.Symbol())
}

func TestBindSupportWrongBase(t *testing.T) {
	_, err := BindSupport(supportLibrary(), "dict_rc")
	require.Error(t, err)

	var resolve werrors.ResolveError
	require.True(t, xerrors.As(err, &resolve))
	require.Equal(t, "dict_rc_inc", resolve.Symbol())
}

func TestCallConv(t *testing.T) {
	var funcs SupportFuncs

	require.Equal(t, CallC, funcs.Conv(suffixCompare))
	require.Equal(t, CallFast, funcs.Conv(suffixInc))
	require.Equal(t, "c", CallC.String())
	require.Equal(t, "fast", CallFast.String())
}
