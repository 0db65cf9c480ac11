// Copyright 2023 The ntree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package ntree

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gogama/ntree/region"
)

type mockWriter struct {
	mock.Mock
}

func (m *mockWriter) Write(p []byte) (int, error) {
	args := m.Called(p)
	return args.Int(0), args.Error(1)
}

func TestTree_WriteDot(t *testing.T) {
	t.Run("NilWriter", func(t *testing.T) {
		tree := New[region.Box, region.Point2](square, 2)

		assert.PanicsWithValue(t, "ntree: nil writer", func() {
			_ = tree.WriteDot(nil)
		})
	})

	t.Run("WriteError", func(t *testing.T) {
		tree := New[region.Box, region.Point2](square, 2)
		cause := errors.New("boom")
		w := &mockWriter{}
		w.On("Write", mock.Anything).Return(0, cause).Once()

		err := tree.WriteDot(w)

		assert.ErrorIs(t, err, cause)
		assert.EqualError(t, err, "ntree: failed to write DOT graph: boom")
		w.AssertExpectations(t)
	})

	t.Run("Success", func(t *testing.T) {
		tree := New[region.Box, region.Point2](square, 2)
		require.True(t, tree.Insert(pt(0, 0)))
		require.True(t, tree.Insert(pt(1, 1)))
		require.True(t, tree.Insert(pt(2, 2)))
		var b strings.Builder

		err := tree.WriteDot(&b)

		require.NoError(t, err)
		assert.Equal(t, `strict digraph {
	node [fontname=Arial,fontsize=12];
	"0" [label="[0,0,4,4]" shape=box];
	"1" [label="2/2\n[0,0,2,2]"];
	"2" [label="0/2\n[2,0,4,2]"];
	"3" [label="0/2\n[0,2,2,4]"];
	"4" [label="1/2\n[2,2,4,4]"];
	"0" -> "1";
	"0" -> "2";
	"0" -> "3";
	"0" -> "4";
}
`, b.String())
	})

	t.Run("Escaping", func(t *testing.T) {
		assert.Equal(t, `a\"b\\c`, dotEscape(`a"b\c`))
	})
}
