// Copyright 2023 The ntree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package region

import (
	"fmt"
	"math"
)

const packageName = "region: "

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}

// checkRange panics if [lo, hi) is not a valid range on the named
// axis. An empty range (lo == hi) is valid. Infinite bounds are not,
// since the range could not be split at a finite midpoint.
func checkRange(axis string, lo, hi float64) {
	if !(lo <= hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		fmtPanic("invalid %s range [%s, %s)", axis, ftoa(lo), ftoa(hi))
	}
}
