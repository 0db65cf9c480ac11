// Copyright 2023 The ntree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package ntree

import (
	"errors"
	"fmt"
)

const packageName = "ntree: "

// ErrInvariant is wrapped by every error returned from Tree.Check.
var ErrInvariant = textErr("invariant violated")

func textErr(text string) error {
	return errors.New(packageName + text)
}

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}

func textPanic(text string) {
	panic(packageName + text)
}

func fmtPanic(format string, a ...interface{}) {
	msg := fmt.Sprintf(packageName+format, a...)
	tracer().Errorf("%s", msg)
	panic(msg)
}
